package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// mfNavRepositoryHandler prices mutual funds by their latest NAV from an
// mfapi.in compatible service. Instrument ids are mapped to scheme codes.
type mfNavRepositoryHandler struct {
	BaseUrl   string
	SchemeIds map[string]string
	client    *http.Client
}

func NewMfNavRepository(baseUrl string, schemeIds map[string]string) PriceRepository {
	return mfNavRepositoryHandler{
		BaseUrl:   strings.TrimRight(baseUrl, "/"),
		SchemeIds: schemeIds,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type mfNavResponse struct {
	Status string `json:"status"`
	Data   []struct {
		Date string `json:"date"`
		Nav  string `json:"nav"`
	} `json:"data"`
}

func (h mfNavRepositoryHandler) GetLatestPrice(ctx context.Context, instrumentID string) (decimal.Decimal, error) {
	scheme, ok := h.SchemeIds[instrumentID]
	if !ok {
		scheme = instrumentID
	}

	url := fmt.Sprintf("%s/mf/%s/latest", h.BaseUrl, scheme)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to build nav request for %s: %w", instrumentID, err)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to fetch nav for %s: %w", instrumentID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("failed to fetch nav for %s: status %d", instrumentID, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to read nav response for %s: %w", instrumentID, err)
	}

	response := mfNavResponse{}
	err = json.Unmarshal(body, &response)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse nav response for %s: %w", instrumentID, err)
	}
	if len(response.Data) == 0 {
		return decimal.Zero, fmt.Errorf("no nav data for %s", instrumentID)
	}

	nav, err := decimal.NewFromString(response.Data[0].Nav)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid nav %q for %s: %w", response.Data[0].Nav, instrumentID, err)
	}

	return nav, nil
}
