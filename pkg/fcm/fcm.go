package fcm

import (
	"context"
	"fmt"
	"log"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/errorutils"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// FailureReason classifies why the gateway rejected a dispatch. Callers
// currently treat every reason the same, but the classification is carried
// on the error so pruning policy can become reason-aware later.
type FailureReason string

const (
	ReasonUnregistered FailureReason = "unregistered"
	ReasonInvalidToken FailureReason = "invalid_token"
	ReasonUnavailable  FailureReason = "unavailable"
	ReasonInternal     FailureReason = "internal"
	ReasonUnknown      FailureReason = "unknown"
)

// SendError wraps a gateway rejection with its classified reason.
type SendError struct {
	Reason FailureReason
	Err    error
}

func (e *SendError) Error() string {
	return fmt.Sprintf("fcm send failed (%s): %v", e.Reason, e.Err)
}

func (e *SendError) Unwrap() error {
	return e.Err
}

// ClassifyError maps a messaging error to a FailureReason.
func ClassifyError(err error) FailureReason {
	switch {
	case messaging.IsUnregistered(err):
		return ReasonUnregistered
	case errorutils.IsInvalidArgument(err):
		return ReasonInvalidToken
	case errorutils.IsUnavailable(err):
		return ReasonUnavailable
	case errorutils.IsInternal(err):
		return ReasonInternal
	default:
		return ReasonUnknown
	}
}

// Client wraps Firebase Cloud Messaging functionality
type Client struct {
	messagingClient *messaging.Client
}

// NewClient creates a new FCM client using the provided credentials file
func NewClient(credentialsFile string) (*Client, error) {
	ctx := context.Background()

	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := firebase.NewApp(ctx, nil, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	messagingClient, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	log.Println("[FCM] Client initialized successfully")
	return &Client{
		messagingClient: messagingClient,
	}, nil
}

// NotificationData contains the data to send in a push notification
type NotificationData struct {
	Title    string
	Body     string
	ImageURL string            // Optional notification image
	Data     map[string]string // Custom data payload
}

// SendToDevice sends a push notification to a single device token. A
// rejection comes back as a *SendError carrying the classified reason.
func (c *Client) SendToDevice(ctx context.Context, token string, notification NotificationData) error {
	message := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title:    notification.Title,
			Body:     notification.Body,
			ImageURL: notification.ImageURL,
		},
		Data: notification.Data,
	}

	if _, err := c.messagingClient.Send(ctx, message); err != nil {
		return &SendError{Reason: ClassifyError(err), Err: err}
	}
	return nil
}
