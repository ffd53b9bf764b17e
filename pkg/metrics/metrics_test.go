package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with a custom registry", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithPrometheusRegistry(registry))

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test"),
				WithSubsystem("sub"),
				WithLatencyBuckets([]float64{1, 2}),
				WithCaloriesBuckets([]float64{10, 20}),
				WithDistanceBuckets([]float64{1}),
				WithPrometheusRegistry(registry),
			)
			manager.RecordTraining("RUN", 15, 0.5)

			Convey("Then metric names should use the namespace and subsystem", func() {
				families, err := registry.Gather()
				So(err, ShouldBeNil)
				names := make([]string, 0, len(families))
				for _, f := range families {
					names = append(names, f.GetName())
				}
				So(names, ShouldContain, "test_sub_processed_total")
				So(names, ShouldContain, "test_sub_calories_kcal")
			})
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given a manager on a fresh registry", t, func() {
		registry := prometheus.NewRegistry()
		m := NewManager(WithPrometheusRegistry(registry))

		Convey("When recording trainings", func() {
			m.RecordTraining("RUN", 797.805, 9.75)
			m.RecordTraining("RUN", 500, 5)
			m.RecordTraining("SWM", 336, 0.99)

			Convey("Then the per-type counters should reflect them", func() {
				So(testutil.ToFloat64(m.trainingsProcessed.WithLabelValues("RUN")), ShouldEqual, 2)
				So(testutil.ToFloat64(m.trainingsProcessed.WithLabelValues("SWM")), ShouldEqual, 1)
			})
		})

		Convey("When recording errors", func() {
			m.RecordTrainingError("XYZ", "invalid_activity_type")

			Convey("Then the error counter should increase", func() {
				So(testutil.ToFloat64(m.trainingErrors.WithLabelValues("XYZ", "invalid_activity_type")), ShouldEqual, 1)
			})
		})

		Convey("When recording HTTP requests", func() {
			m.RecordHTTPRequest("trainings", "POST", "200", 1.5)

			Convey("Then the request counter should increase", func() {
				So(testutil.ToFloat64(m.httpRequests.WithLabelValues("trainings", "POST", "200")), ShouldEqual, 1)
			})
		})
	})

	Convey("Given the global helpers", t, func() {
		Convey("Then they should not panic", func() {
			So(func() {
				RecordTraining("WLK", 349.25, 5.85)
				RecordTrainingError("RUN", "invalid_parameters")
				RecordProcessingLatency(0.2)
				RecordHTTPRequest("healthz", "GET", "200", 0.1)
			}, ShouldNotPanic)
			So(Default(), ShouldNotBeNil)
			So(GetRegistry(), ShouldNotBeNil)
		})
	})
}
