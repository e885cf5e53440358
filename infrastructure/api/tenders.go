package api

import (
	"context"
	"net/url"
	"time"

	"chainfly-client/domain/records"
)

// tenderDTO is the wire shape of a tender
type tenderDTO struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Deadline    string  `json:"deadline"`
	Value       float64 `json:"value"`
	Location    string  `json:"location"`
	Sector      string  `json:"sector"`
	Status      string  `json:"status"`
}

type tenderListResponse struct {
	Tenders []tenderDTO `json:"tenders"`
}

// ListTenders retrieves every tender
func (c *Client) ListTenders(ctx context.Context) ([]records.Tender, error) {
	var resp tenderListResponse
	if err := c.getJSON(ctx, "/tenders", nil, &resp); err != nil {
		return nil, err
	}
	return tendersFromDTOs(resp.Tenders), nil
}

// SearchTenders retrieves tenders matching the server-side query
func (c *Client) SearchTenders(ctx context.Context, params map[string]string) ([]records.Tender, error) {
	query := url.Values{}
	for key, value := range params {
		if value != "" {
			query.Set(key, value)
		}
	}

	var resp tenderListResponse
	if err := c.getJSON(ctx, "/tenders/search", query, &resp); err != nil {
		return nil, err
	}
	return tendersFromDTOs(resp.Tenders), nil
}

func tendersFromDTOs(dtos []tenderDTO) []records.Tender {
	tenders := make([]records.Tender, 0, len(dtos))
	for _, dto := range dtos {
		tenders = append(tenders, records.Tender{
			ID:          dto.ID,
			Title:       dto.Title,
			Description: dto.Description,
			Deadline:    parseAPITime(dto.Deadline),
			Value:       dto.Value,
			Location:    dto.Location,
			Sector:      dto.Sector,
			Status:      records.TenderStatus(dto.Status),
		})
	}
	return tenders
}

// parseAPITime parses the timestamp formats the server emits: RFC3339 or a
// bare date. Unparseable values become the zero time rather than failing
// the whole listing.
func parseAPITime(s string) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
