package mailer

import (
	"context"
	"fmt"
	"html"
	"net/smtp"
	"strings"

	"codexrfa-service/internal/app/drivers/mailer"
	"codexrfa-service/internal/pkg/constvars"
	"codexrfa-service/internal/pkg/dto/requests"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Worker consumes the notification queue and sends the red flag report
// email to the doctor. Sends are rate limited so a burst of submissions
// never trips the mail host's throttling.
type Worker struct {
	Client  *mailer.SMTPClient
	Queue   string
	Log     *zap.Logger
	Limiter *rate.Limiter
}

func NewWorker(client *mailer.SMTPClient, queue string, sendRatePerMin int, log *zap.Logger) *Worker {
	if sendRatePerMin <= 0 {
		sendRatePerMin = 60
	}
	return &Worker{
		Client:  client,
		Queue:   queue,
		Log:     log,
		Limiter: rate.NewLimiter(rate.Limit(float64(sendRatePerMin)/60.0), 1),
	}
}

// Start begins consuming. The returned stop function cancels the consume
// loop and waits for the in-flight message to finish.
func (w *Worker) Start(conn *amqp091.Connection) (stop func(), err error) {
	channel, err := conn.Channel()
	if err != nil {
		return nil, err
	}
	if _, err := channel.QueueDeclare(w.Queue, true, false, false, false, nil); err != nil {
		return nil, err
	}
	if err := channel.Qos(1, 0, false); err != nil {
		return nil, err
	}

	deliveries, err := channel.Consume(w.Queue, "", false, false, false, false, nil)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		defer close(done)
		for {
			select {
			case <-ctx.Done():
				return
			case delivery, ok := <-deliveries:
				if !ok {
					return
				}
				w.handle(ctx, delivery)
			}
		}
	}()

	return func() {
		cancel()
		_ = channel.Close()
		<-done
	}, nil
}

func (w *Worker) handle(ctx context.Context, delivery amqp091.Delivery) {
	var payload requests.RedFlagEmailPayload
	if err := json.Unmarshal(delivery.Body, &payload); err != nil {
		w.Log.Error("dropping malformed notification message", zap.Error(err))
		_ = delivery.Nack(false, false)
		return
	}

	if !w.Client.Configured() {
		w.Log.Warn("smtp not configured, dropping red flag report",
			zap.String("record_id", payload.RecordID),
		)
		_ = delivery.Ack(false)
		return
	}

	if err := w.Limiter.Wait(ctx); err != nil {
		_ = delivery.Nack(false, true)
		return
	}

	if err := w.send(&payload); err != nil {
		w.Log.Error("failed to send red flag report, requeueing",
			zap.String("record_id", payload.RecordID),
			zap.Error(err),
		)
		_ = delivery.Nack(false, true)
		return
	}

	w.Log.Info("red flag report sent",
		zap.String("record_id", payload.RecordID),
		zap.Int("flag_count", len(payload.Flags)),
	)
	_ = delivery.Ack(false)
}

func (w *Worker) send(payload *requests.RedFlagEmailPayload) error {
	subject := SubjectFor(payload.RecordID)
	body := renderReport(payload)
	msg := []byte(fmt.Sprintf(constvars.EmailSendHTMLFormat, payload.DoctorEmail, subject, body))
	addr := fmt.Sprintf("%s:%d", w.Client.Host, w.Client.Port)
	return smtp.SendMail(addr, w.Client.Auth, w.Client.EmailSender, []string{payload.DoctorEmail}, msg)
}

func renderReport(payload *requests.RedFlagEmailPayload) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "<p>Dear Dr. %s,</p>", html.EscapeString(payload.DoctorName))
	fmt.Fprintf(&sb, "<p>Submission <b>%s</b> (patient %s) triggered the following red flags:</p><ul>",
		html.EscapeString(payload.RecordID), html.EscapeString(payload.PatientHash))
	for _, flag := range payload.Flags {
		fmt.Fprintf(&sb, "<li><b>%s</b> (%s): %s",
			html.EscapeString(flag.RedFlagID),
			html.EscapeString(flag.Severity),
			html.EscapeString(flag.DoctorAtAGlance))
		if flag.DoctorVideoURL != "" {
			fmt.Fprintf(&sb, ` <a href="%s">guidance video</a>`, flag.DoctorVideoURL)
		}
		sb.WriteString("</li>")
	}
	sb.WriteString("</ul>")
	return sb.String()
}
