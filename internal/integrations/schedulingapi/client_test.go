package schedulingapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shamal-freight/SFB-LeadService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

var testDate = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

func newTestClient(serverURL string) *Client {
	return NewClient(serverURL, 5*time.Second, nopLogger{}, nil)
}

func TestGetSubmissionsByDate_WrappedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, pathSubmissionsByDate, r.URL.Path)
		assert.Equal(t, "2025-03-10", r.URL.Query().Get("date"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":[
			{"selectedTime":"10:30 AM","userName":"Ali"},
			{"selectedTime":"7:00 PM","userName":"Sara"}
		]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	booked, err := client.GetSubmissionsByDate(context.Background(), testDate)
	require.NoError(t, err)
	require.Len(t, booked, 2)
	assert.Equal(t, "10:30 AM", booked[0].SelectedTime)
	assert.Equal(t, "Ali", booked[0].UserName)
	assert.Equal(t, "7:00 PM", booked[1].SelectedTime)
}

func TestGetSubmissionsByDate_BareArrayResponse(t *testing.T) {
	// Старый вариант backend отдаёт массив без обёртки
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"selectedTime":"6:00 PM","userName":"Omar"}]`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	booked, err := client.GetSubmissionsByDate(context.Background(), testDate)
	require.NoError(t, err)
	require.Len(t, booked, 1)
	assert.Equal(t, "6:00 PM", booked[0].SelectedTime)
}

func TestGetSubmissionsByDate_EmptyDay(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"data":[]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	booked, err := client.GetSubmissionsByDate(context.Background(), testDate)
	require.NoError(t, err)
	assert.Empty(t, booked)
}

func TestGetSubmissionsByDate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "unreadable body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`<html>gateway timeout</html>`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			client := newTestClient(server.URL)
			_, err := client.GetSubmissionsByDate(context.Background(), testDate)
			assert.ErrorIs(t, err, ErrFetchSlots)
		})
	}
}

func TestGetSubmissionsByDate_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // закрыт до запроса

	client := newTestClient(server.URL)
	_, err := client.GetSubmissionsByDate(context.Background(), testDate)
	assert.ErrorIs(t, err, ErrFetchSlots)
}

func TestSubmit_RoutesByFlow(t *testing.T) {
	tests := []struct {
		flow     string
		wantPath string
	}{
		{flow: "freight", wantPath: pathSubmitFreight},
		{flow: "freight-intl", wantPath: pathSubmitFreight},
		{flow: "car-shipping", wantPath: pathSubmitCar},
	}

	for _, tt := range tests {
		t.Run(tt.flow, func(t *testing.T) {
			var gotPath string
			var gotBody Submission

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
				w.WriteHeader(http.StatusCreated)
			}))
			defer server.Close()

			client := newTestClient(server.URL)
			err := client.Submit(context.Background(), &Submission{
				Flow:    tt.flow,
				Intent:  string(domain.IntentBookNow),
				Answers: map[string]string{"readiness": "2-weeks"},
				Booking: &BookingDetails{
					Date:         "2025-03-10",
					SelectedTime: "7:00 PM",
					UserName:     "Jane Doe",
					Email:        "jane@example.com",
				},
			})
			require.NoError(t, err)
			assert.Equal(t, tt.wantPath, gotPath)
			assert.Equal(t, tt.flow, gotBody.Flow)
			assert.Equal(t, "2-weeks", gotBody.Answers["readiness"])
			require.NotNil(t, gotBody.Booking)
			assert.Equal(t, "7:00 PM", gotBody.Booking.SelectedTime)
		})
	}
}

func TestSubmit_BackendError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"success":false,"message":"slot already taken"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	err := client.Submit(context.Background(), &Submission{Flow: "freight", Intent: "wait-24-hours"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSubmission)
	assert.Contains(t, err.Error(), "slot already taken")
}
