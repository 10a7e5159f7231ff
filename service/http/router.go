package http

import (
	"net/http"

	"github.com/oppenprint/docpress/service/app"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

func NewRouter(logger *log.Logger, a *app.App) http.Handler {
	r := mux.NewRouter()

	// Catch the api version
	rv := r.PathPrefix("/{apiVersion}").Subrouter()

	rv.HandleFunc("/health/ready", HandleHealthReady()).Methods(http.MethodGet)

	r.HandleFunc("/v1/renders", HandleSubmitRender(logger, a)).Methods(http.MethodPost)
	r.HandleFunc("/v1/renders", HandleListRenderJobs(logger, a)).Methods(http.MethodGet)
	r.HandleFunc("/v1/renders/{id}", HandleGetRenderJob(logger, a)).Methods(http.MethodGet)
	r.HandleFunc("/v1/renders/{id}/cancel", HandleCancelRenderJob(logger, a)).Methods(http.MethodPost)

	// Use middleware
	h := UseCors(r)
	h = UseLogging(logger.Writer(), h)
	h = UseCompress(h)
	h = UseJson(h)

	return h
}
