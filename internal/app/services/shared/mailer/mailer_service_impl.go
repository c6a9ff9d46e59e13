package mailer

import (
	"context"
	"fmt"

	"codexrfa-service/internal/app/contracts"
	"codexrfa-service/internal/app/models"
	"codexrfa-service/internal/pkg/constvars"
	"codexrfa-service/internal/pkg/dto/requests"
	"codexrfa-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// mailerService publishes red flag reports to the notification queue.
// Delivery is decoupled from the submission path: a slow or unreachable
// mail host never delays the caregiver's completion response.
type mailerService struct {
	Channel *amqp091.Channel
	Queue   string
	Log     *zap.Logger
}

func NewMailerService(rabbitMQConnection *amqp091.Connection, queue string, log *zap.Logger) (contracts.Notifier, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}
	if _, err := channel.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return nil, err
	}

	return &mailerService{
		Channel: channel,
		Queue:   queue,
		Log:     log,
	}, nil
}

func (s *mailerService) NotifyRedFlags(ctx context.Context, doctor *models.Doctor, record *models.SubmissionRecord) error {
	payload := requests.RedFlagEmailPayload{
		DoctorName:  doctor.Name,
		DoctorEmail: doctor.Email,
		RecordID:    record.RecordID,
		PatientHash: record.Patient.Hash,
		FormID:      record.FormID,
		Language:    record.Language,
	}
	for _, flag := range record.RedFlags {
		payload.Flags = append(payload.Flags, requests.RedFlagEmailItem{
			RedFlagID:       flag.RedFlagID,
			Severity:        flag.Severity,
			DoctorAtAGlance: flag.DoctorAtAGlance,
			DoctorVideoURL:  flag.DoctorVideoURL,
		})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
	}
	if err := s.Channel.PublishWithContext(ctx, "", s.Queue, false, false, message); err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, s.Queue)
	}

	s.Log.Info("red flag report queued",
		zap.String("record_id", record.RecordID),
		zap.Int("flag_count", len(record.RedFlags)),
	)
	return nil
}

// SubjectFor builds the email subject used by the worker.
func SubjectFor(recordID string) string {
	return fmt.Sprintf(constvars.EmailRedFlagSubjectFormat, recordID)
}
