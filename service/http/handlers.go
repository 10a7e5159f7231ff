package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/oppenprint/docpress/service/app"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// Submit a render job, or render synchronously when ?sync=true.
func HandleSubmitRender(logger *log.Logger, a *app.App) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		if err := checkNonEmptyBody(r); err != nil {
			handleError(rw, logger, err)
			return
		}

		var req ReqSubmitRender

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			handleError(rw, logger, err)
			return
		}

		if r.FormValue("sync") == "true" {
			output, err := a.RenderSync(r.Context(), req.PageWidth, req.Document)
			if err != nil {
				handleError(rw, logger, err)
				return
			}
			handleJsonResponse(rw, http.StatusOK, ResRenderSync{Output: output})
			return
		}

		job := req.ToApp()
		if err := a.SubmitRenderJob(r.Context(), &job); err != nil {
			handleError(rw, logger, err)
			return
		}

		res := ResSubmitRender{ID: job.ID, State: stateName(job.State)}

		handleJsonResponse(rw, http.StatusCreated, res)
	}
}

// List render jobs
func HandleListRenderJobs(logger *log.Logger, a *app.App) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		limit, err := strconv.Atoi(r.FormValue("limit"))
		if err != nil {
			limit = 0
		}

		offset, err := strconv.Atoi(r.FormValue("offset"))
		if err != nil {
			offset = 0
		}

		list, err := a.ListRenderJobs(r.Context(), limit, offset)
		if err != nil {
			handleError(rw, logger, err)
			return
		}

		res := ResRenderJobListFromApp(list)

		handleJsonResponse(rw, http.StatusOK, res)
	}
}

// Get render job details
func HandleGetRenderJob(logger *log.Logger, a *app.App) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)

		id, err := uuid.Parse(vars["id"])
		if err != nil {
			handleError(rw, logger, err)
			return
		}

		job, err := a.GetRenderJob(r.Context(), id)
		if err != nil {
			handleError(rw, logger, err)
			return
		}

		res := ResRenderJobFromApp(job)

		handleJsonResponse(rw, http.StatusOK, res)
	}
}

// Cancel a pending render job
func HandleCancelRenderJob(logger *log.Logger, a *app.App) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)

		id, err := uuid.Parse(vars["id"])
		if err != nil {
			handleError(rw, logger, err)
			return
		}

		if err := a.CancelRenderJob(r.Context(), id); err != nil {
			handleError(rw, logger, err)
			return
		}

		handleJsonResponse(rw, http.StatusOK, "Ok")
	}
}

func HandleHealthReady() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		rw.WriteHeader(http.StatusOK)
	}
}
