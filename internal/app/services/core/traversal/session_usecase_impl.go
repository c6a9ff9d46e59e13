package traversal

import (
	"context"
	"time"

	"codexrfa-service/internal/app/config"
	"codexrfa-service/internal/app/contracts"
	"codexrfa-service/internal/app/models"
	"codexrfa-service/internal/app/services/core/identity"
	"codexrfa-service/internal/app/services/core/redflags"
	"codexrfa-service/internal/app/services/core/submissions"
	"codexrfa-service/internal/pkg/constvars"
	"codexrfa-service/internal/pkg/dto/requests"
	"codexrfa-service/internal/pkg/dto/responses"
	"codexrfa-service/internal/pkg/exceptions"
	"codexrfa-service/internal/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SessionUsecase struct {
	CatalogUsecase       contracts.CatalogUsecase
	DoctorRepository     contracts.DoctorRepository
	SessionStore         contracts.SessionStore
	SubmissionRepository contracts.SubmissionRepository
	Notifier             contracts.Notifier
	MediaStorage         contracts.MediaStorage
	InternalConfig       *config.InternalConfig
	Log                  *zap.Logger
}

func NewSessionUsecase(
	catalogUsecase contracts.CatalogUsecase,
	doctorRepository contracts.DoctorRepository,
	sessionStore contracts.SessionStore,
	submissionRepository contracts.SubmissionRepository,
	notifier contracts.Notifier,
	mediaStorage contracts.MediaStorage,
	internalConfig *config.InternalConfig,
	log *zap.Logger,
) contracts.SessionUsecase {
	return &SessionUsecase{
		CatalogUsecase:       catalogUsecase,
		DoctorRepository:     doctorRepository,
		SessionStore:         sessionStore,
		SubmissionRepository: submissionRepository,
		Notifier:             notifier,
		MediaStorage:         mediaStorage,
		InternalConfig:       internalConfig,
		Log:                  log,
	}
}

// StartSession derives the patient identity, pins the form snapshot at its
// current version, and stores fresh traversal state. The identifying
// fields live only for the duration of this call.
func (uc *SessionUsecase) StartSession(ctx context.Context, request *requests.StartSession) (*responses.SessionStarted, error) {
	utils.SanitizeStartSessionRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		return nil, err
	}

	doctor, err := uc.DoctorRepository.FindBySlug(ctx, request.DoctorSlug)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}

	snapshot, err := uc.CatalogUsecase.GetFormSnapshot(ctx, request.FormID)
	if err != nil {
		return nil, err
	}
	if !formSupportsLanguage(&snapshot.Form, request.Language) {
		return nil, exceptions.ErrLanguageNotFound(nil)
	}

	patient, err := identity.Derive(
		identity.Fields{
			DateOfBirth:      request.DateOfBirth,
			GuardianInitials: request.GuardianInitials,
		},
		identity.Params{
			Secret:     uc.InternalConfig.Identity.Secret,
			Iterations: uc.InternalConfig.Identity.Iterations,
			Version:    uc.InternalConfig.Identity.Version,
		},
	)
	if err != nil {
		return nil, err
	}

	session := &models.TraversalSession{
		ID:                uuid.NewString(),
		DoctorID:          doctor.ID,
		FormID:            snapshot.Form.ID,
		FormVersion:       snapshot.Form.Version,
		Language:          request.Language,
		Patient:           patient,
		PendingQuestionID: snapshot.Form.RootQuestionID,
		StartedAt:         time.Now().UTC(),
	}
	if err := uc.SessionStore.SaveSession(ctx, session, uc.sessionTTL()); err != nil {
		return nil, err
	}

	token, err := utils.GenerateSessionJWT(session.ID, uc.InternalConfig.Session.JWTSecret, uc.InternalConfig.Session.TTLMinutes)
	if err != nil {
		return nil, exceptions.ErrTokenGenerate(err)
	}

	uc.Log.Info("session started",
		zap.String("session_id", session.ID),
		zap.String("form_id", session.FormID),
		zap.Int64("form_version", session.FormVersion),
	)

	return &responses.SessionStarted{
		SessionToken: token,
		FormID:       snapshot.Form.ID,
		Language:     request.Language,
		Question:     localizeQuestion(snapshot, snapshot.Form.RootQuestionID, request.Language),
	}, nil
}

// AdvanceSession records one answer. The engine decides the successor; on
// completion the flags are evaluated, the record persisted, and the doctor
// notified before the session is discarded.
func (uc *SessionUsecase) AdvanceSession(ctx context.Context, sessionID string, request *requests.AdvanceSession) (*responses.SessionStep, error) {
	utils.SanitizeAdvanceSessionRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		return nil, err
	}

	session, err := uc.SessionStore.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Completed {
		return nil, exceptions.ErrSessionComplete()
	}

	snapshot, err := uc.CatalogUsecase.GetPinnedSnapshot(ctx, session.FormID, session.FormVersion)
	if err != nil {
		return nil, err
	}

	latest := models.Answer{
		QuestionID: request.QuestionID,
		Value:      request.Value,
		Values:     request.Values,
		FreeText:   request.FreeText,
	}
	step, err := Advance(snapshot, &session.Answers, session.PendingQuestionID, latest)
	if err != nil {
		return nil, err
	}

	if !step.Complete {
		session.PendingQuestionID = step.NextQuestionID
		if err := uc.SessionStore.SaveSession(ctx, session, uc.sessionTTL()); err != nil {
			return nil, err
		}
		return &responses.SessionStep{
			Question: localizeQuestion(snapshot, step.NextQuestionID, session.Language),
		}, nil
	}

	return uc.completeSession(ctx, session, snapshot)
}

func (uc *SessionUsecase) completeSession(ctx context.Context, session *models.TraversalSession, snapshot *models.FormSnapshot) (*responses.SessionStep, error) {
	flags := redflags.Evaluate(snapshot, session.Language, &session.Answers)
	uc.presignFlagMedia(ctx, flags)

	record, err := submissions.Assemble(session, flags)
	if err != nil {
		return nil, err
	}
	if err := uc.SubmissionRepository.CreateSubmission(ctx, record); err != nil {
		return nil, err
	}

	if len(flags) > 0 {
		uc.notifyDoctor(ctx, session.DoctorID, record)
	}

	if err := uc.SessionStore.DeleteSession(ctx, session.ID); err != nil {
		uc.Log.Warn("failed to delete completed session",
			zap.String("session_id", session.ID),
			zap.Error(err),
		)
	}

	uc.Log.Info("session completed",
		zap.String("session_id", session.ID),
		zap.String("record_id", record.RecordID),
		zap.Int("answer_count", session.Answers.Len()),
		zap.Int("flag_count", len(flags)),
	)

	views := make([]responses.TriggeredFlagView, 0, len(flags))
	for _, flag := range flags {
		views = append(views, responses.TriggeredFlagView{
			RedFlagID:        flag.RedFlagID,
			Severity:         flag.Severity,
			PatientResponse:  flag.PatientResponse,
			PatientVideoURL:  flag.PatientVideoURL,
			FallbackLanguage: flag.FallbackLanguage,
		})
	}
	return &responses.SessionStep{
		Completed: true,
		RecordID:  record.RecordID,
		RedFlags:  views,
	}, nil
}

// presignFlagMedia swaps education media object keys for time-limited
// URLs. A presign failure downgrades the flag to text-only guidance; it
// never blocks completion.
func (uc *SessionUsecase) presignFlagMedia(ctx context.Context, flags []models.TriggeredFlag) {
	for i := range flags {
		patientURL, err := uc.MediaStorage.PresignEducationMedia(ctx, flags[i].PatientVideoURL)
		if err != nil {
			uc.Log.Warn("failed to presign patient education media", zap.Error(err))
			patientURL = ""
		}
		flags[i].PatientVideoURL = patientURL

		doctorURL, err := uc.MediaStorage.PresignEducationMedia(ctx, flags[i].DoctorVideoURL)
		if err != nil {
			uc.Log.Warn("failed to presign doctor education media", zap.Error(err))
			doctorURL = ""
		}
		flags[i].DoctorVideoURL = doctorURL
	}
}

// notifyDoctor queues the red flag report. The submission is already
// persisted; a queueing failure is logged and the caregiver's response is
// unaffected.
func (uc *SessionUsecase) notifyDoctor(ctx context.Context, doctorID string, record *models.SubmissionRecord) {
	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil || doctor == nil {
		uc.Log.Error("cannot resolve doctor for red flag notification",
			zap.String("doctor_id", doctorID),
			zap.Error(err),
		)
		return
	}
	if err := uc.Notifier.NotifyRedFlags(ctx, doctor, record); err != nil {
		uc.Log.Error("failed to queue red flag notification",
			zap.String("record_id", record.RecordID),
			zap.Error(err),
		)
	}
}

func (uc *SessionUsecase) sessionTTL() time.Duration {
	return time.Duration(uc.InternalConfig.Session.TTLMinutes) * time.Minute
}

func formSupportsLanguage(form *models.Form, languageCode string) bool {
	for _, code := range form.LanguageCodes {
		if code == languageCode {
			return true
		}
	}
	return false
}

// localizeQuestion renders one question for the session language, falling
// back to the form default and finally to any available text. Options keep
// their catalog order.
func localizeQuestion(snapshot *models.FormSnapshot, questionID, languageCode string) *responses.QuestionView {
	question := snapshot.Question(questionID)
	if question == nil {
		return nil
	}

	view := &responses.QuestionView{
		ID:             question.ID,
		Prompt:         localizeText(question.Prompts, languageCode, snapshot.Form.DefaultLanguage),
		Kind:           question.Kind,
		Required:       question.Required,
		ShowsTextField: question.ShowsTextField,
	}
	if question.Range != nil {
		view.Min = &question.Range.Min
		view.Max = &question.Range.Max
	}

	for _, optionID := range question.OptionIDs {
		option := snapshot.Option(optionID)
		if option == nil {
			continue
		}
		view.Options = append(view.Options, responses.OptionView{
			ID:             option.ID,
			Label:          localizeText(option.Labels, languageCode, snapshot.Form.DefaultLanguage),
			ShowsTextField: option.ShowsTextField,
		})
	}
	return view
}

func localizeText(texts map[string]string, languageCode, defaultLanguage string) string {
	if text, ok := texts[languageCode]; ok && text != "" {
		return text
	}
	if text, ok := texts[defaultLanguage]; ok && text != "" {
		return text
	}
	return texts[constvars.DefaultLanguageCode]
}
