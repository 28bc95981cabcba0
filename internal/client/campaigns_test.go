package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/mcapi/pkg/mcapi"
)

func TestCampaignsClient_Create(t *testing.T) {
	t.Parallel()

	tests := []TestCreateOperation[mcapi.CampaignRequest, mcapi.Campaign]{
		{
			Name: "regular campaign",
			Request: &mcapi.CampaignRequest{
				Type:       "regular",
				Recipients: &mcapi.CampaignRecipients{ListID: "list-1"},
			},
			ExpectedPath: "/campaigns",
			StatusCode:   http.StatusOK,
			Response:     &mcapi.Campaign{ID: "c1", Type: "regular"},
		},
		{
			Name:       "unknown type",
			Request:    &mcapi.CampaignRequest{Type: "carrier-pigeon"},
			WantErr:    true,
			ErrMessage: "allowed: regular, plaintext, absplit, rss, variate",
			WantNoCall: true,
		},
		{
			Name: "bad reply to",
			Request: &mcapi.CampaignRequest{
				Type:     "plaintext",
				Settings: &mcapi.CampaignSettings{ReplyTo: "nobody"},
			},
			WantErr:    true,
			ErrMessage: "settings.reply_to",
			WantNoCall: true,
		},
	}

	RunCreateTests(t, tests, func(c *Client) func(context.Context, *mcapi.CampaignRequest) (*mcapi.Campaign, error) {
		return c.Campaigns().Create
	})
}

func TestCampaignsClient_Update(t *testing.T) {
	t.Parallel()

	server := jsonServer(t, http.StatusOK, &mcapi.Campaign{ID: "c1"})
	campaigns := NewTestClient(server.URL).Campaigns()

	_, err := campaigns.Update(context.Background(), "c1", &mcapi.CampaignRequest{
		Settings: &mcapi.CampaignSettings{SubjectLine: "Hello"},
	})

	var validationErr *mcapi.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{"settings.from_name", "settings.reply_to"}, validationErr.Fields())
	assert.Empty(t, server.Requests())

	_, err = campaigns.Update(context.Background(), "c1", &mcapi.CampaignRequest{
		Settings: &mcapi.CampaignSettings{SubjectLine: "Hello", FromName: "Acme", ReplyTo: "news@acme.example.com"},
	})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPatch, server.Last(t).Method)
	assert.Equal(t, "/campaigns/c1", server.Last(t).Path)
}

func TestCampaignsClient_Actions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		run    func(context.Context, mcapi.CampaignsClient) error
		action string
	}{
		{"send", func(ctx context.Context, c mcapi.CampaignsClient) error { return c.Send(ctx, "c1") }, "send"},
		{"unschedule", func(ctx context.Context, c mcapi.CampaignsClient) error { return c.Unschedule(ctx, "c1") }, "unschedule"},
		{"cancel", func(ctx context.Context, c mcapi.CampaignsClient) error { return c.Cancel(ctx, "c1") }, "cancel-send"},
		{"schedule", func(ctx context.Context, c mcapi.CampaignsClient) error {
			return c.Schedule(ctx, "c1", &mcapi.CampaignScheduleRequest{ScheduleTime: "2026-11-01T15:00:00+00:00"})
		}, "schedule"},
		{"test", func(ctx context.Context, c mcapi.CampaignsClient) error {
			return c.Test(ctx, "c1", &mcapi.CampaignTestRequest{TestEmails: []string{"qa@example.com"}, SendType: "html"})
		}, "test"},
	}

	for _, test := range tests {
		test := test

		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			server := newRecordingServer(t, func(writer http.ResponseWriter, _ *http.Request) {
				writer.WriteHeader(http.StatusNoContent)
			})

			err := test.run(context.Background(), NewTestClient(server.URL).Campaigns())
			require.NoError(t, err)

			last := server.Last(t)
			assert.Equal(t, http.MethodPost, last.Method)
			assert.Equal(t, "/campaigns/c1/actions/"+test.action, last.Path)
		})
	}
}

func TestCampaignsClient_ActionPayloads(t *testing.T) {
	t.Parallel()

	server := jsonServer(t, http.StatusNoContent, nil)
	campaigns := NewTestClient(server.URL).Campaigns()
	ctx := context.Background()

	err := campaigns.Schedule(ctx, "c1", &mcapi.CampaignScheduleRequest{})
	assert.True(t, mcapi.IsValidation(err))

	err = campaigns.Schedule(ctx, "c1", nil)
	assert.True(t, mcapi.IsValidation(err))

	err = campaigns.Test(ctx, "c1", &mcapi.CampaignTestRequest{TestEmails: []string{"qa@example.com"}, SendType: "pdf"})

	var fieldErr *mcapi.FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "send_type", fieldErr.Field)

	assert.Empty(t, server.Requests())
}

func TestCampaignsClient_Replicate(t *testing.T) {
	t.Parallel()

	server := jsonServer(t, http.StatusOK, &mcapi.Campaign{ID: "c2", Status: "save"})
	campaigns := NewTestClient(server.URL).Campaigns()

	campaign, err := campaigns.Replicate(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, "c2", campaign.ID)
	assert.Equal(t, "/campaigns/c1/actions/replicate", server.Last(t).Path)
}

func TestCampaignsClient_SendFailure(t *testing.T) {
	t.Parallel()

	server := jsonServer(t, http.StatusBadRequest, map[string]interface{}{
		"title":  "Bad Request",
		"status": 400,
		"detail": "Your Campaign is not ready to send.",
	})

	err := NewTestClient(server.URL).Campaigns().Send(context.Background(), "c1")

	var transportErr *mcapi.TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, http.StatusBadRequest, transportErr.StatusCode)
	assert.Equal(t, "Your Campaign is not ready to send.", transportErr.Detail)
	assert.Len(t, server.Requests(), 1)
}
