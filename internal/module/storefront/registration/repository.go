package registration

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"

	"github.com/Spark-Media-Group/moto-coach-sub001/pkg/errors"
	"github.com/Spark-Media-Group/moto-coach-sub001/pkg/status"
)

type Repository interface {
	CountByEvent(ctx context.Context, eventName, eventDate string) (int, error)
}

type repository struct {
	baseURL       string
	apiKey        string
	spreadsheetID string
	ledgerRange   string
	logger        *logrus.Logger
	rc            *resty.Client
}

func NewRepository(baseURL, apiKey, spreadsheetID, ledgerRange string, logger *logrus.Logger, rc *resty.Client) Repository {
	return &repository{
		baseURL:       baseURL,
		apiKey:        apiKey,
		spreadsheetID: spreadsheetID,
		ledgerRange:   ledgerRange,
		logger:        logger,
		rc:            rc,
	}
}

type valuesResponse struct {
	Range  string     `json:"range"`
	Values [][]string `json:"values"`
}

// CountByEvent implements Repository. The whole ledger fits one bounded range
// read; name matches case-insensitively, the date string must match exactly.
func (r *repository) CountByEvent(ctx context.Context, eventName, eventDate string) (int, error) {
	rows, err := r.listRows(ctx)
	if err != nil {
		return 0, err
	}

	name := strings.ToLower(strings.TrimSpace(eventName))

	count := 0
	for _, row := range rows {
		if strings.ToLower(strings.TrimSpace(row.EventName)) == name && row.EventDate == eventDate {
			count++
		}
	}

	return count, nil
}

func (r *repository) listRows(ctx context.Context) ([]Row, error) {
	if r.apiKey == "" || r.spreadsheetID == "" {
		return nil, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "registration ledger is not configured")
	}

	valuesURL := fmt.Sprintf("%s/spreadsheets/%s/values/%s", r.baseURL, url.PathEscape(r.spreadsheetID), url.PathEscape(r.ledgerRange))

	result := valuesResponse{}
	resp, err := r.rc.R().
		SetContext(ctx).
		SetQueryParam("key", r.apiKey).
		SetResult(&result).
		Get(valuesURL)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return nil, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while reading the registration ledger")
	}

	if resp.IsError() {
		r.logger.WithContext(ctx).WithError(fmt.Errorf(resp.String())).Error()
		return nil, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while reading the registration ledger")
	}

	rows := make([]Row, 0, len(result.Values))
	for _, cells := range result.Values {
		if len(cells) < 3 {
			continue
		}
		rows = append(rows, Row{
			Timestamp: cells[0],
			EventName: cells[1],
			EventDate: cells[2],
		})
	}

	return rows, nil
}
