package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"caredocs/internal/compliance"
	"caredocs/internal/document"
	"caredocs/internal/status"
	"caredocs/internal/status/handler/mocks"
	dErrors "caredocs/pkg/domain-errors"
	"caredocs/pkg/domain"
)

//go:generate mockgen -source=handler.go -destination=mocks/status-mocks.go -package=mocks Service
type StatusHandlerSuite struct {
	suite.Suite
	ctx context.Context
}

func (s *StatusHandlerSuite) SetupSuite() {
	s.ctx = context.Background()
}

func TestStatusHandlerSuite(t *testing.T) {
	suite.Run(t, new(StatusHandlerSuite))
}

func newTestHandler(t *testing.T) (*chi.Mux, *mocks.MockService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	mockService := mocks.NewMockService(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	handler := New(mockService, logger, nil, nil)
	r := chi.NewRouter()
	handler.Register(r)
	return r, mockService
}

func (s *StatusHandlerSuite) TestHandleClientView() {
	router, mockService := newTestHandler(s.T())
	clientID := domain.NewClientID()

	mockService.EXPECT().
		ClientView(gomock.Any(), clientID).
		Return(&status.ClientView{
			ClientID:        clientID,
			TaxonomyVersion: "2026.1",
			Overall:         compliance.StatusOverdue,
			Folders: []status.FolderView{
				{ID: "service-agreement", Name: "Service Agreement", Status: compliance.StatusOverdue, DocumentCount: 0},
				{ID: domain.ArchiveFolderID, Name: "Archive", Status: compliance.StatusNone, DocumentCount: 2},
			},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/clients/"+clientID.String()+"/folders", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	s.Equal(http.StatusOK, rec.Code)

	var resp struct {
		TaxonomyVersion string `json:"taxonomy_version"`
		Overall         string `json:"overall_status"`
		Folders         []struct {
			ID            string `json:"id"`
			Name          string `json:"name"`
			Status        string `json:"status"`
			DocumentCount int    `json:"document_count"`
		} `json:"folders"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("2026.1", resp.TaxonomyVersion)
	s.Equal("overdue", resp.Overall)
	s.Require().Len(resp.Folders, 2)
	s.Equal("archive", resp.Folders[1].ID)
	s.Equal(2, resp.Folders[1].DocumentCount)
}

func (s *StatusHandlerSuite) TestHandleFolderStatus() {
	router, mockService := newTestHandler(s.T())
	clientID := domain.NewClientID()
	due := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)

	mockService.EXPECT().
		FolderReport(gomock.Any(), clientID, domain.FolderID("care-plans")).
		Return(compliance.FolderReport{
			FolderID: "care-plans",
			Status:   compliance.StatusDueSoon,
			Items: []compliance.ItemStatus{
				{Name: "Care Plan Summary", Status: compliance.StatusDueSoon, DueDate: &due, HasDocument: true},
			},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/clients/"+clientID.String()+"/folders/care-plans/status", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	s.Equal(http.StatusOK, rec.Code)

	var resp folderReportResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("due-soon", resp.Status)
	s.Require().Len(resp.Items, 1)
	s.True(resp.Items[0].HasDocument)
}

func (s *StatusHandlerSuite) TestHandleFolderStatusUnknownFolder() {
	router, mockService := newTestHandler(s.T())
	clientID := domain.NewClientID()

	mockService.EXPECT().
		FolderReport(gomock.Any(), clientID, domain.FolderID("nope")).
		Return(compliance.FolderReport{}, dErrors.New(dErrors.CodeNotFound, "folder not found: nope"))

	req := httptest.NewRequest(http.MethodGet, "/clients/"+clientID.String()+"/folders/nope/status", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *StatusHandlerSuite) TestHandleOverallStatus() {
	router, mockService := newTestHandler(s.T())
	clientID := domain.NewClientID()

	mockService.EXPECT().
		OverallStatus(gomock.Any(), clientID).
		Return(compliance.StatusCompliant, nil)

	req := httptest.NewRequest(http.MethodGet, "/clients/"+clientID.String()+"/status", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"status":"compliant"}`, rec.Body.String())
}

func (s *StatusHandlerSuite) TestHandleFolderDocuments() {
	router, mockService := newTestHandler(s.T())
	clientID := domain.NewClientID()
	docID := domain.NewDocumentID()

	mockService.EXPECT().
		DocumentsInFolder(gomock.Any(), clientID, domain.ArchiveFolderID).
		Return([]*document.Document{
			{
				ID:         docID,
				ClientID:   clientID,
				Type:       "Service Agreement",
				FileName:   "agreement.pdf",
				UploadDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
				Archived:   true,
			},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/clients/"+clientID.String()+"/folders/archive/documents", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	s.Equal(http.StatusOK, rec.Code)

	var resp struct {
		Documents []struct {
			ID       string `json:"id"`
			Title    string `json:"title"`
			Archived bool   `json:"archived"`
		} `json:"documents"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Require().Len(resp.Documents, 1)
	s.Equal(docID.String(), resp.Documents[0].ID)
	s.True(resp.Documents[0].Archived)
}

func (s *StatusHandlerSuite) TestStoreOutageMapsToServiceUnavailable() {
	router, mockService := newTestHandler(s.T())
	clientID := domain.NewClientID()

	mockService.EXPECT().
		OverallStatus(gomock.Any(), clientID).
		Return(compliance.Status(""), dErrors.New(dErrors.CodeUnavailable, "compliance data unavailable"))

	req := httptest.NewRequest(http.MethodGet, "/clients/"+clientID.String()+"/status", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	s.Equal(http.StatusServiceUnavailable, rec.Code)
}
