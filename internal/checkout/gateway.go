package checkout

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/mehdibenatia/boutiqa-backend/internal/order"
)

// Intent is a provider-side payment intent handle.
type Intent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"clientSecret"`
}

// Confirmation is the provider's verdict on a confirmed payment.
type Confirmation struct {
	Status          string `json:"status"`
	PaymentIntentID string `json:"paymentIntentId"`
}

// PaymentGateway is the opaque payment collaborator. The checkout flow
// only relies on the call order (update before confirm) and the outcome.
type PaymentGateway interface {
	CreateIntent(amount float64, currency string) (Intent, error)
	UpdateIntent(id string, shipping order.ShippingInfo) error
	Confirm(clientSecret string) (Confirmation, error)
}

// HTTPGateway talks to the payment provider's JSON API.
type HTTPGateway struct {
	apiURL    string
	secretKey string
	testMode  bool
	client    *http.Client
}

func NewHTTPGateway(apiURL, secretKey string, testMode bool) *HTTPGateway {
	return &HTTPGateway{
		apiURL:    apiURL,
		secretKey: secretKey,
		testMode:  testMode,
		client:    &http.Client{Timeout: 20 * time.Second},
	}
}

type gatewayResponse struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Status       string `json:"status"`
	Error        *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (g *HTTPGateway) post(path string, payload map[string]interface{}) (gatewayResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return gatewayResponse{}, err
	}
	req, err := http.NewRequest("POST", g.apiURL+path, bytes.NewBuffer(body))
	if err != nil {
		return gatewayResponse{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.secretKey)

	res, err := g.client.Do(req)
	if err != nil {
		return gatewayResponse{}, err
	}
	defer res.Body.Close()

	var parsed gatewayResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return gatewayResponse{}, err
	}
	if parsed.Error != nil {
		return gatewayResponse{}, fmt.Errorf("payment provider: %s (%s)", parsed.Error.Message, parsed.Error.Code)
	}
	return parsed, nil
}

func (g *HTTPGateway) CreateIntent(amount float64, currency string) (Intent, error) {
	test := 0
	if g.testMode {
		test = 1
	}
	resp, err := g.post("/intents", map[string]interface{}{
		"amount":   amount,
		"currency": currency,
		"test":     test,
	})
	if err != nil {
		return Intent{}, err
	}
	return Intent{ID: resp.ID, ClientSecret: resp.ClientSecret}, nil
}

func (g *HTTPGateway) UpdateIntent(id string, shipping order.ShippingInfo) error {
	_, err := g.post("/intents/"+id+"/update", map[string]interface{}{
		"shipping": map[string]string{
			"name":    shipping.FullName,
			"phone":   shipping.Phone,
			"address": shipping.Address,
			"city":    shipping.City,
		},
	})
	return err
}

func (g *HTTPGateway) Confirm(clientSecret string) (Confirmation, error) {
	resp, err := g.post("/intents/confirm", map[string]interface{}{
		"client_secret": clientSecret,
	})
	if err != nil {
		return Confirmation{}, err
	}
	return Confirmation{Status: resp.Status, PaymentIntentID: resp.ID}, nil
}
