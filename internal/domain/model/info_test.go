package model_test

import (
	"testing"

	model "github.com/okian/ftracker/internal/domain/model"
	"github.com/smartystreets/goconvey/convey"
)

func TestInfoMessage(t *testing.T) {
	convey.Convey("Given an InfoMessage", t, func() {
		info := model.InfoMessage{
			TrainingType: "Running",
			Duration:     1,
			Distance:     9.75,
			Speed:        9.75,
			Calories:     797.805,
		}

		convey.Convey("When rendering the message", func() {
			msg := info.Message()

			convey.Convey("Then it should follow the fixed template", func() {
				convey.So(msg, convey.ShouldEqual,
					"Activity type: Running; Duration:1.000 h.; Distance:9.750 km; Avg speed:9.750 km/h; Calories spent:797.805.")
			})

			convey.Convey("And repeated calls should be byte-identical", func() {
				convey.So(info.Message(), convey.ShouldEqual, msg)
				convey.So(info.String(), convey.ShouldEqual, msg)
			})
		})

		convey.Convey("When values need rounding", func() {
			info := model.InfoMessage{
				TrainingType: "Swimming",
				Duration:     4,
				Distance:     0.5796,
				Speed:        0.042,
				Calories:     182.72,
			}

			convey.Convey("Then every float should have three decimals", func() {
				convey.So(info.Message(), convey.ShouldEqual,
					"Activity type: Swimming; Duration:4.000 h.; Distance:0.580 km; Avg speed:0.042 km/h; Calories spent:182.720.")
			})
		})

		convey.Convey("When the message is zero valued", func() {
			convey.So(model.InfoMessage{}.Message(), convey.ShouldEqual,
				"Activity type: ; Duration:0.000 h.; Distance:0.000 km; Avg speed:0.000 km/h; Calories spent:0.000.")
		})
	})
}
