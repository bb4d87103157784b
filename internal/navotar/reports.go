package navotar

import (
	"context"
	"net/url"
	"strconv"

	"rentaldesk-backend/internal/domain"
)

// ListReportFolders returns the report browser's folder tree
func (c *Client) ListReportFolders(ctx context.Context) ([]domain.ReportFolder, error) {
	var folders []domain.ReportFolder
	if _, err := c.get(ctx, "/reports/folders", nil, &folders); err != nil {
		return nil, err
	}
	return folders, nil
}

// ListReports returns the report definitions; folderID 0 lists all
func (c *Client) ListReports(ctx context.Context, folderID int32) ([]domain.Report, error) {
	query := url.Values{}
	if folderID != 0 {
		query.Set("FolderId", strconv.Itoa(int(folderID)))
	}

	var reports []domain.Report
	if _, err := c.get(ctx, "/reports", query, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}
