package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/ventureworks/hustle-engine/pkg/state"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type CitySummary struct {
	Key       string `json:"key"`
	Name      string `json:"name"`
	ShortName string `json:"short_name,omitempty"`
	Goods     int    `json:"goods"`
	Locations int    `json:"locations"`
}

type CommandRequest struct {
	Action string `json:"action"`

	GoodsID    int    `json:"goods_id,omitempty"`
	Quantity   int    `json:"quantity,omitempty"`
	Points     int    `json:"points,omitempty"`
	WorkTypeID string `json:"work_type_id,omitempty"`
	HouseType  string `json:"house_type_id,omitempty"`
	City       string `json:"city,omitempty"`
	Mode       string `json:"mode,omitempty"`
	LocationID int    `json:"location_id,omitempty"`
	Amount     int    `json:"amount,omitempty"`
	EventID    string `json:"event_id,omitempty"`
	OptionID   string `json:"option_id,omitempty"`
}

type CommandResponse struct {
	OK       bool             `json:"ok"`
	Messages []string         `json:"messages"`
	Sounds   []string         `json:"sounds,omitempty"`
	State    *state.GameState `json:"state"`
}

func testConnection(client *http.Client, baseURL string) bool {
	resp, err := client.Get(baseURL + "/health")
	if err != nil {
		return false
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()
	return resp.StatusCode == http.StatusOK
}

func listCities(client *http.Client, baseURL string) ([]CitySummary, error) {
	resp, err := client.Get(baseURL + "/v1/catalog/cities")
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp.StatusCode, body, "failed to list cities")
	}

	var cities []CitySummary
	if err := json.Unmarshal(body, &cities); err != nil {
		return nil, fmt.Errorf("failed to parse city list: %w", err)
	}
	return cities, nil
}

func createGameState(client *http.Client, baseURL, cityKey string) (*state.GameState, error) {
	payload, err := json.Marshal(map[string]string{"city": cityKey})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := client.Post(baseURL+"/v1/gamestate", "application/json", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusCreated {
		return nil, apiError(resp.StatusCode, body, "failed to create game state")
	}

	var gs state.GameState
	if err := json.Unmarshal(body, &gs); err != nil {
		return nil, fmt.Errorf("failed to parse game state response: %w", err)
	}
	return &gs, nil
}

func getGameState(client *http.Client, baseURL string, id uuid.UUID) (*state.GameState, error) {
	resp, err := client.Get(fmt.Sprintf("%s/v1/gamestate/%s", baseURL, id))
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp.StatusCode, body, "failed to get game state")
	}

	var gs state.GameState
	if err := json.Unmarshal(body, &gs); err != nil {
		return nil, fmt.Errorf("failed to parse game state response: %w", err)
	}
	return &gs, nil
}

func sendCommand(client *http.Client, baseURL string, id uuid.UUID, cmd CommandRequest) (*CommandResponse, error) {
	payload, err := json.Marshal(cmd)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal command: %w", err)
	}

	url := fmt.Sprintf("%s/v1/gamestate/%s/command", baseURL, id)
	resp, err := client.Post(url, "application/json", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp.StatusCode, body, "command failed")
	}

	var cmdResp CommandResponse
	if err := json.Unmarshal(body, &cmdResp); err != nil {
		return nil, fmt.Errorf("failed to parse command response: %w", err)
	}
	return &cmdResp, nil
}

func apiError(status int, body []byte, context string) error {
	var errorResp ErrorResponse
	if err := json.Unmarshal(body, &errorResp); err != nil || errorResp.Error == "" {
		return fmt.Errorf("API returned status %d: %s", status, string(body))
	}
	return fmt.Errorf("%s: %s", context, errorResp.Error)
}
