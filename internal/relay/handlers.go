package relay

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/flashcard-bridge/internal/adapter"
	"github.com/MKhiriev/flashcard-bridge/internal/codec"
	"github.com/MKhiriev/flashcard-bridge/models"
)

// handler runs one inbound message against the lifecycle and channel that
// were current when the message arrived.
type handler struct {
	router    *Router
	channel   Channel
	lifecycle *Lifecycle
}

func (h *handler) post(ctx context.Context, msg models.Outbound) {
	h.router.postTo(ctx, h.channel, msg)
}

func (h *handler) profile() models.UserProfile {
	return h.router.cfg.Profile
}

func (h *handler) authInfo() models.AuthInfo {
	p := h.profile()
	return models.AuthInfo{ID: p.ID, Email: p.Email, Name: p.Name, Token: h.router.tokens.Token()}
}

// appReady loads the user record, creating it when the user has none, and
// sends the identity message. Only the first ready signal of a lifecycle is
// handled; a failed attempt lets the next signal try again.
func (h *handler) appReady(ctx context.Context) func() {
	log := h.router.logger
	if !h.lifecycle.beginReady() {
		log.Debug().Msg("duplicate ready signal ignored")
		return nil
	}

	return func() {
		rec, err := h.loadOrCreate(ctx)
		if err != nil {
			h.lifecycle.resetReady()
			log.Err(err).Msg("failed to prepare user record")
			h.post(ctx, models.NewDataRefreshError(err))
			h.afterFailure(ctx, err)
			return
		}

		h.lifecycle.setRecordID(rec.RecordID)

		p := h.profile()
		h.post(ctx, models.NewUserInfo(models.UserInfoData{
			AuthInfo: h.authInfo(),
			AppID:    h.router.cfg.AppID,
			Role:     p.Role(),
			SchoolID: codec.ExtractRecordID(p.School),
			TutorID:  codec.ExtractRecordID(p.Tutor),
			RecordID: rec.RecordID,
			UserData: rec,
		}))
		h.lifecycle.markAuthSent()
	}
}

func (h *handler) loadOrCreate(ctx context.Context) (*models.UserRecord, error) {
	userID := h.profile().ID

	rec, err := h.router.records.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if rec != nil {
		return rec, nil
	}

	recordID, err := h.router.records.Create(ctx, userID, h.profile())
	if err != nil {
		return nil, err
	}

	rec = &models.UserRecord{
		RecordID:      recordID,
		UserID:        userID,
		Cards:         []models.Card{},
		ColorMapping:  map[string]any{},
		TopicLists:    []models.TopicList{},
		TopicMetadata: []models.TopicMetadata{},
	}
	rec.SpacedRepetition.Normalize()
	return rec, nil
}

// currentRecord loads the record of the session, by id when it is known.
func (h *handler) currentRecord(ctx context.Context, recordID string) (*models.UserRecord, error) {
	if recordID == "" {
		recordID = h.lifecycle.RecordID()
	}
	if recordID != "" {
		return h.router.records.LoadByID(ctx, recordID)
	}

	rec, err := h.router.records.Load(ctx, h.profile().ID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, ErrNoRecord
	}
	h.lifecycle.setRecordID(rec.RecordID)
	return rec, nil
}

func (h *handler) recordIDOr(id string) string {
	if id != "" {
		return id
	}
	return h.lifecycle.RecordID()
}

// save admits req to the coordinator and returns the write and its reply.
func (h *handler) save(ctx context.Context, req models.SaveRequest) func() {
	write, outcome, err := h.router.saver.Admit(req)

	return func() {
		if write != nil {
			err = write(ctx)
		}
		if err != nil && !errors.Is(err, ErrSaveDropped) {
			h.router.logger.Err(err).Str("record_id", req.RecordID).Msg("save failed")
		}
		h.post(ctx, models.NewSaveResult(outcome, err))
		h.afterFailure(ctx, err)
	}
}

func (h *handler) saveData(ctx context.Context, m models.SaveData) func() {
	req := *m.Data
	req.RecordID = h.recordIDOr(req.RecordID)
	return h.save(ctx, req)
}

func (h *handler) topicListsUpdated(ctx context.Context, m models.TopicListsUpdated) func() {
	return h.save(ctx, models.SaveRequest{
		RecordID:       h.recordIDOr(m.Data.RecordID),
		TopicLists:     m.Data.TopicLists,
		PreserveFields: true,
	})
}

func (h *handler) triggerSave(ctx context.Context, m models.TriggerSave) func() {
	if len(m.Cards) == 0 {
		return func() { h.post(ctx, models.NewSaveResult(models.SaveOutcome{}, nil)) }
	}

	return h.save(ctx, models.SaveRequest{
		RecordID:       h.lifecycle.RecordID(),
		Cards:          codec.MigrateLegacyCards(m.Cards),
		PreserveFields: true,
	})
}

// addToBank appends new cards to the bank and schedules a refresh of the
// application's data. Concurrent requests are ignored while one runs.
func (h *handler) addToBank(ctx context.Context, m models.AddToBank) func() {
	log := h.router.logger
	if !h.lifecycle.beginAddToBank() {
		log.Debug().Msg("add to bank already in progress, request ignored")
		return nil
	}

	return func() {
		defer h.lifecycle.endAddToBank()

		added, err := h.appendCards(ctx, m.Data)
		if err != nil {
			log.Err(err).Msg("add to bank failed")
			h.post(ctx, models.NewAddToBankResult(err))
			h.afterFailure(ctx, err)
			return
		}

		log.Info().Int("added", added).Int("received", len(m.Data.Cards)).Msg("cards added to bank")
		h.post(ctx, models.NewAddToBankResult(nil))

		refreshCtx := context.WithoutCancel(ctx)
		h.router.after(h.router.cfg.AddToBankSettleDelay, func() {
			h.pushAppData(refreshCtx, "")
		})
	}
}

func (h *handler) appendCards(ctx context.Context, data *models.AddToBankRequest) (int, error) {
	rec, err := h.currentRecord(ctx, data.RecordID)
	if err != nil {
		return 0, err
	}

	present := make(map[string]struct{}, len(rec.Cards))
	for _, c := range rec.Cards {
		if id := c.ID(); id != "" {
			present[id] = struct{}{}
		}
	}

	cards := append([]models.Card{}, rec.Cards...)
	boxes := rec.SpacedRepetition
	boxes.Box1 = append([]models.BoxEntry{}, boxes.Box1...)
	boxes.Normalize()

	added := 0
	for _, c := range codec.MigrateLegacyCards(data.Cards) {
		id := c.ID()
		if id != "" {
			if _, dup := present[id]; dup {
				continue
			}
			present[id] = struct{}{}
		}
		cards = append(cards, c)
		added++

		if id != "" && !boxes.Contains(id) {
			boxes.Box1 = append(boxes.Box1, models.BoxEntry{CardID: id})
		}
	}
	if added == 0 {
		return 0, nil
	}

	outcome, err := h.router.saver.Save(ctx, models.SaveRequest{
		RecordID:         rec.RecordID,
		Cards:            cards,
		SpacedRepetition: &boxes,
		PreserveFields:   true,
	})
	if err != nil {
		return 0, fmt.Errorf("error saving added cards: %w", err)
	}
	if outcome.Deferred {
		h.router.logger.Debug().Msg("added cards queued behind a running save")
	}
	return added, nil
}

func (h *handler) reloadAppData(ctx context.Context) {
	h.pushAppData(ctx, "")
}

func (h *handler) requestUpdatedData(ctx context.Context, m models.RequestUpdatedData) {
	h.pushAppData(ctx, m.RecordID)
}

// pushAppData sends the whole record, or a refresh error.
func (h *handler) pushAppData(ctx context.Context, recordID string) {
	rec, err := h.currentRecord(ctx, recordID)
	if err != nil {
		h.router.logger.Err(err).Msg("failed to refresh application data")
		h.post(ctx, models.NewDataRefreshError(err))
		h.afterFailure(ctx, err)
		return
	}

	h.lifecycle.setRecordID(rec.RecordID)
	h.post(ctx, models.NewAppData(rec, h.authInfo()))
}

// refreshAuth sends the current host session token, or a failure that makes
// the application fall back to a full reload.
func (h *handler) refreshAuth(ctx context.Context) {
	token, err := h.router.tokens.Current()
	if err != nil {
		h.router.logger.Warn().Err(err).Msg("token refresh failed")
	}
	h.post(ctx, models.NewAuthRefreshResult(token, err))
}

// afterFailure starts the token refresh flow when err is an authentication
// failure of the record API.
func (h *handler) afterFailure(ctx context.Context, err error) {
	if err != nil && adapter.IsAuthError(err) {
		h.refreshAuth(ctx)
	}
}

func (h *handler) requestRecordID(ctx context.Context) {
	if id := h.lifecycle.RecordID(); id != "" {
		h.post(ctx, models.NewRecordIDResponse(id))
		return
	}

	rec, err := h.currentRecord(ctx, "")
	if err != nil {
		h.post(ctx, models.NewRecordIDError(err))
		h.afterFailure(ctx, err)
		return
	}
	h.post(ctx, models.NewRecordIDResponse(rec.RecordID))
}

func (h *handler) persistenceServicesReady(m models.PersistenceServicesReady) {
	h.lifecycle.setPersistenceServices(m.Services)
	h.router.logger.Info().Interface("services", m.Services).Msg("persistence services ready")
}

func (h *handler) authConfirmed() {
	if !h.lifecycle.confirmAuth() {
		h.router.logger.Debug().Msg("auth confirmed before identity was sent")
	}
}
