package platform

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCasesWrappedEnvelopeWithEarnings(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/cases", r.URL.Path)
		w.Write([]byte(`{"data":[{"id":"C1","loan_id":"LN123","dpd":10}],"total_earnings":500}`))
	}))

	result, err := client.Cases(context.Background())
	require.NoError(t, err)
	require.Len(t, result.Cases, 1)
	assert.Equal(t, "LN123", result.Cases[0].LoanID)
	assert.Equal(t, 10, result.Cases[0].DPD)
	assert.Equal(t, 500.0, result.TotalEarnings)
}

func TestCasesBareArray(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"C1"},{"id":"C2"}]`))
	}))

	result, err := client.Cases(context.Background())
	require.NoError(t, err)
	assert.Len(t, result.Cases, 2)
	assert.Zero(t, result.TotalEarnings)
}

func TestCaseDetails(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/cases/C42", r.URL.Path)
		w.Write([]byte(`{"data":{"case_id":"C42","agent_name":"agent1","days_past_due":12}}`))
	}))

	detail, err := client.CaseDetails(context.Background(), "C42")
	require.NoError(t, err)
	assert.Equal(t, "C42", detail.CaseID)
	assert.Equal(t, 12, detail.DaysPastDue)
}

func TestTrailsRoundTrip(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			require.Equal(t, "/cases/C1/trails", r.URL.Path)
			w.Write([]byte(`[{"trail_id":1,"case_id":1,"contacted":true,"payment_date":"2026-09-15","remarks":"promised"}]`))
		case http.MethodPost:
			var input TrailInput
			require.NoError(t, json.NewDecoder(r.Body).Decode(&input))
			assert.True(t, input.Contacted)
			assert.Equal(t, "will pay friday", input.Remarks)
			json.NewEncoder(w).Encode(Trail{TrailID: 2, CaseID: 1, Contacted: true, Remarks: input.Remarks})
		}
	}))

	ctx := context.Background()

	trails, err := client.Trails(ctx, "C1")
	require.NoError(t, err)
	require.Len(t, trails, 1)
	assert.Equal(t, "promised", trails[0].Remarks)

	trail, err := client.AddTrail(ctx, "C1", TrailInput{Contacted: true, Remarks: "will pay friday"})
	require.NoError(t, err)
	assert.Equal(t, 2, trail.TrailID)
}

func TestPaymentLink(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/cases/C7/payment-link", r.URL.Path)
		w.Write([]byte(`{"payment_link":"https://payment.example.com/pay?caseID=C7"}`))
	}))

	link, err := client.PaymentLink(context.Background(), "C7")
	require.NoError(t, err)
	assert.Equal(t, "https://payment.example.com/pay?caseID=C7", link)
}

func TestUploadCasesMultipart(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/cases/upload", r.URL.Path)
		require.Contains(t, r.Header.Get("Content-Type"), "multipart/form-data")

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "cases.csv", header.Filename)

		json.NewEncoder(w).Encode(UploadResult{Message: "Cases uploaded", CasesImported: 3})
	}))

	result, err := client.UploadCases(context.Background(), "cases.csv",
		strings.NewReader("loan_id,emi_amount\nLN1,1500\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, result.CasesImported)
}

func TestAssignCasesToAgencySinglePost(t *testing.T) {
	var calls int
	var gotBody map[string]any
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/cases/assign", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"message":"Cases assigned successfully"}`))
	}))

	err := client.AssignCasesToAgency(context.Background(), "A1", []string{"C1", "C2"})
	require.NoError(t, err)

	assert.Equal(t, 1, calls, "bulk assignment must be a single request")
	assert.Equal(t, "A1", gotBody["agency_id"])
	assert.Equal(t, []any{"C1", "C2"}, gotBody["case_ids"])
}

func TestAssignCaseToUser(t *testing.T) {
	var gotBody map[string]any
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/cases/assign", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"message":"ok"}`))
	}))

	require.NoError(t, client.AssignCaseToUser(context.Background(), "C1", "U1"))
	assert.Equal(t, "C1", gotBody["case_id"])
	assert.Equal(t, "U1", gotBody["user_id"])
}

func TestUnassignedAndAgencyCases(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/cases/unassigned":
			w.Write([]byte(`{"data":[{"id":"C1"}]}`))
		case "/agencies/me/cases":
			w.Write([]byte(`[{"id":"C2"},{"id":"C3"}]`))
		default:
			http.NotFound(w, r)
		}
	}))

	ctx := context.Background()

	unassigned, err := client.UnassignedCases(ctx)
	require.NoError(t, err)
	assert.Len(t, unassigned, 1)

	agencyCases, err := client.AgencyCases(ctx)
	require.NoError(t, err)
	assert.Len(t, agencyCases, 2)
}
