package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"rentaldesk-backend/internal/domain"
	"rentaldesk-backend/internal/schema"
)

func (s *Server) handleDashboardWidgets(w http.ResponseWriter, r *http.Request) {
	widgets, err := s.dashboard.GetWidgets(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, widgets)
}

func (s *Server) handleDashboardWidgetSave(w http.ResponseWriter, r *http.Request) {
	var widgets []domain.DashboardWidget
	if err := json.NewDecoder(r.Body).Decode(&widgets); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Message: "invalid request body"})
		return
	}
	if err := s.dashboard.SaveWidgets(r.Context(), widgets); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (s *Server) handleDashboardStats(w http.ResponseWriter, r *http.Request) {
	var locationID int32
	if raw := r.URL.Query().Get("locationId"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			locationID = int32(n)
		}
	}
	stats, err := s.dashboard.GetStats(r.Context(), locationID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleDashboardNotices(w http.ResponseWriter, r *http.Request) {
	notices, err := s.dashboard.GetNotices(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, notices)
}

func (s *Server) handleGlobalSearch(w http.ResponseWriter, r *http.Request) {
	results, err := s.search.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, results)
}

func (s *Server) handleReportFolders(w http.ResponseWriter, r *http.Request) {
	folders, err := s.reports.ListFolders(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, folders)
}

func (s *Server) handleReportList(w http.ResponseWriter, r *http.Request) {
	var folderID int32
	if raw := r.URL.Query().Get("folderId"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			folderID = int32(n)
		}
	}
	reports, err := s.reports.ListReports(r.Context(), folderID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reports)
}

func (s *Server) handleReportExport(w http.ResponseWriter, r *http.Request) {
	params := schema.ParseSearchParams(r.URL.Query())
	workbook, err := s.reports.ExportAgreements(r.Context(), params)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="agreements.xlsx"`)
	w.WriteHeader(http.StatusOK)
	w.Write(workbook)
}
