package schedulingapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/shamal-freight/SFB-LeadService/internal/domain"
)

const (
	opSubmissionsByDate = "submissions_by_date"
	opSubmit            = "submit"

	pathSubmissionsByDate = "/api/v1/submissions/by-date"
	pathSubmitFreight     = "/api/v1/submit-freight-booking"
	pathSubmitCar         = "/api/v1/submit-car-booking"
)

// Client клиент scheduling backend — внешнего сервиса, хранящего заявки
// и занятые слоты консультаций
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
	metrics    MetricsRecorder
}

// NewClient создает новый экземпляр клиента scheduling backend.
// metrics может быть nil — тогда метрики внешних запросов не пишутся.
func NewClient(baseURL string, timeout time.Duration, log Logger, metrics MetricsRecorder) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log:     log,
		metrics: metrics,
	}
}

func (c *Client) observe(operation string, status int, started time.Time) {
	if c.metrics == nil {
		return
	}
	c.metrics.ObserveExternal(operation, strconv.Itoa(status), time.Since(started).Seconds())
}

// GetSubmissionsByDate получает booked-set на указанную дату.
// Любая сетевая ошибка или нечитаемое тело сворачиваются в ErrFetchSlots:
// вызывающий слой показывает пустой список и кнопку повтора.
func (c *Client) GetSubmissionsByDate(ctx context.Context, date time.Time) ([]domain.BookedSlot, error) {
	endpoint := fmt.Sprintf("%s%s?date=%s",
		c.baseURL, pathSubmissionsByDate, url.QueryEscape(date.Format(domain.DateFormat)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Accept", "application/json")

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(opSubmissionsByDate, 0, started)
		return nil, fmt.Errorf("%w: %v", ErrFetchSlots, err)
	}
	defer resp.Body.Close()
	c.observe(opSubmissionsByDate, resp.StatusCode, started)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrFetchSlots, resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", ErrFetchSlots, err)
	}

	payload, err := decodeBookedSlots(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchSlots, err)
	}

	booked := make([]domain.BookedSlot, len(payload))
	for i, p := range payload {
		booked[i] = domain.BookedSlot{
			SelectedTime: p.SelectedTime,
			UserName:     p.UserName,
		}
	}
	return booked, nil
}

// decodeBookedSlots разбирает обе формы ответа by-date:
// {"success":true,"data":[...]} и голый массив [...]
func decodeBookedSlots(body []byte) ([]bookedSlotPayload, error) {
	var wrapped submissionsByDateResponse
	if err := json.Unmarshal(body, &wrapped); err == nil && wrapped.Data != nil {
		return wrapped.Data, nil
	}

	var bare []bookedSlotPayload
	if err := json.Unmarshal(body, &bare); err == nil {
		return bare, nil
	}

	return nil, fmt.Errorf("unrecognized response body: %s", string(body))
}

// Submit отправляет финальную заявку. Эндпоинт выбирается по типу визарда,
// контракт payload один для всех маршрутов.
func (c *Client) Submit(ctx context.Context, sub *Submission) error {
	path := pathSubmitFreight
	if sub.Flow == string(domain.FlowCarShipping) {
		path = pathSubmitCar
	}
	endpoint := c.baseURL + path

	body, err := json.Marshal(sub)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal submission: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(opSubmit, 0, started)
		return fmt.Errorf("%w: %v", ErrSubmission, err)
	}
	defer resp.Body.Close()
	c.observe(opSubmit, resp.StatusCode, started)

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	default:
		respBody, _ := io.ReadAll(resp.Body)
		var errResp ErrorResponse
		if json.Unmarshal(respBody, &errResp) == nil && errResp.Message != "" {
			return fmt.Errorf("%w: status %d: %s", ErrSubmission, resp.StatusCode, errResp.Message)
		}
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrSubmission, resp.StatusCode, string(respBody))
	}
}
