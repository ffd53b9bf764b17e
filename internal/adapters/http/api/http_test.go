package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/okian/ftracker/internal/adapters/http/api"
	service "github.com/okian/ftracker/internal/app"
	"github.com/okian/ftracker/internal/domain/model"
	"github.com/okian/ftracker/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

// mockDependencies fails every Process call with err.
type mockDependencies struct {
	err error
}

func (m *mockDependencies) Process(_ context.Context, _ model.Package) (model.Report, error) {
	return model.Report{}, m.err
}

func (m *mockDependencies) Codes() []string { return nil }

func newMux(deps api.Dependencies) *http.ServeMux {
	mux := http.NewServeMux()
	api.NewServer(deps).Register(context.Background(), mux)
	return mux
}

func post(mux http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/trainings", strings.NewReader(body))
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func TestServer_Trainings(t *testing.T) {
	Convey("Given an API server backed by the tracker service", t, func() {
		mux := newMux(service.New(service.WithIDGenerator(func() string { return "id-1" })))

		Convey("When posting a running package", func() {
			w := post(mux, `{"workout_type":"RUN","data":[15000,1,75]}`)

			Convey("Then it should return the computed report", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Header().Get("Content-Type"), ShouldStartWith, "application/json")

				var resp map[string]any
				So(json.Unmarshal(w.Body.Bytes(), &resp), ShouldBeNil)
				So(resp["id"], ShouldEqual, "id-1")
				So(resp["workout_type"], ShouldEqual, "RUN")
				So(resp["training_type"], ShouldEqual, "Running")
				So(resp["distance"], ShouldAlmostEqual, 9.75, 1e-9)
				So(resp["calories"], ShouldAlmostEqual, 797.805, 1e-3)
				So(resp["message"], ShouldEqual,
					"Activity type: Running; Duration:1.000 h.; Distance:9.750 km; Avg speed:9.750 km/h; Calories spent:797.805.")
			})
		})

		Convey("When posting an unknown workout type", func() {
			w := post(mux, `{"workout_type":"XYZ","data":[1,2,3]}`)

			Convey("Then it should return 422 invalid_activity_type", func() {
				So(w.Code, ShouldEqual, http.StatusUnprocessableEntity)
				So(w.Body.String(), ShouldContainSubstring, `"code":"invalid_activity_type"`)
			})
		})

		Convey("When posting the wrong number of parameters", func() {
			w := post(mux, `{"workout_type":"SWM","data":[720,1,80]}`)

			Convey("Then it should return 422 invalid_parameters", func() {
				So(w.Code, ShouldEqual, http.StatusUnprocessableEntity)
				So(w.Body.String(), ShouldContainSubstring, `"code":"invalid_parameters"`)
			})
		})

		Convey("When posting a zero duration", func() {
			w := post(mux, `{"workout_type":"RUN","data":[15000,0,75]}`)

			Convey("Then it should return 422 invalid_parameters", func() {
				So(w.Code, ShouldEqual, http.StatusUnprocessableEntity)
			})
		})

		Convey("When posting values whose results overflow float64", func() {
			for _, body := range []string{
				`{"workout_type":"RUN","data":[1,1,1e308]}`,
				`{"workout_type":"SWM","data":[720,1,80,1e307,1000]}`,
			} {
				w := post(mux, body)

				So(w.Code, ShouldEqual, http.StatusUnprocessableEntity)
				var resp map[string]any
				So(json.Unmarshal(w.Body.Bytes(), &resp), ShouldBeNil)
				So(resp["code"], ShouldEqual, "invalid_parameters")
			}
		})

		Convey("When posting malformed bodies", func() {
			for _, body := range []string{`{`, `{}`, `{"workout_type":"RUN"}`, `{"workout_type":"RUN","data":[1,1,1],"x":1}`} {
				w := post(mux, body)
				So(w.Code, ShouldEqual, http.StatusBadRequest)
				So(w.Body.String(), ShouldContainSubstring, `"code":"bad_request"`)
			}
		})

		Convey("When using the wrong method", func() {
			req := httptest.NewRequest(http.MethodGet, "/trainings", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then it should return 405", func() {
				So(w.Code, ShouldEqual, http.StatusMethodNotAllowed)
				So(w.Header().Get("Allow"), ShouldEqual, http.MethodPost)
			})
		})

		Convey("When listing training types", func() {
			req := httptest.NewRequest(http.MethodGet, "/trainings/types", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then it should return the sorted codes", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(strings.TrimSpace(w.Body.String()), ShouldEqual, `{"types":["RUN","SWM","WLK"]}`)
			})
		})

		Convey("When requesting health", func() {
			post(mux, `{"workout_type":"WLK","data":[9000,1,75,180]}`)
			req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then it should expose the tracker metrics", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Body.String(), ShouldContainSubstring, "ftracker_trainings_processed_total")
				So(w.Body.String(), ShouldContainSubstring, "ftracker_http_requests_total")
			})
		})
	})
}

func TestServer_ProcessFailures(t *testing.T) {
	Convey("Given dependencies that fail unexpectedly", t, func() {
		mux := newMux(&mockDependencies{err: context.Canceled})

		Convey("When the request is canceled", func() {
			w := post(mux, `{"workout_type":"RUN","data":[15000,1,75]}`)

			Convey("Then it should return 503", func() {
				So(w.Code, ShouldEqual, http.StatusServiceUnavailable)
			})
		})
	})

	Convey("Given dependencies with an unclassified error", t, func() {
		mux := newMux(&mockDependencies{err: http.ErrHandlerTimeout})
		w := post(mux, `{"workout_type":"RUN","data":[15000,1,75]}`)

		Convey("Then it should return 500", func() {
			So(w.Code, ShouldEqual, http.StatusInternalServerError)
			So(w.Body.String(), ShouldContainSubstring, `"code":"internal"`)
		})
	})
}
