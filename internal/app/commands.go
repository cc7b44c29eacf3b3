package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"hotel_manager/internal/domain"
)

// generationKey counts successful writes. Cached reads embed it in their keys,
// so bumping it retires every cached result at once.
const generationKey = "hotel:gen"

type CommandService struct {
	repo  domain.HotelRepository
	cache domain.Cache
	// recheck makes UpdateReservation verify the new room is free.
	recheck bool
}

func NewCommandService(r domain.HotelRepository, c domain.Cache, recheckOnEdit bool) *CommandService {
	return &CommandService{repo: r, cache: c, recheck: recheckOnEdit}
}

// InitializeStore creates and seeds the store on first run.
func (s *CommandService) InitializeStore(ctx context.Context) (bool, error) {
	created, err := s.repo.Initialize(ctx)
	if err != nil {
		log.Error().Err(err).Msg("store initialization failed")
		return false, err
	}
	if created {
		s.bumpGeneration(ctx)
	}
	return created, nil
}

func (s *CommandService) CreateClient(ctx context.Context, c domain.NewClient) (int64, error) {
	c = normalizeClient(c)
	if err := validateClient(c); err != nil {
		return 0, err
	}
	id, err := s.repo.CreateClient(ctx, c)
	if err != nil {
		log.Warn().Err(err).Str("email", c.Email).Msg("create client failed")
		return 0, err
	}
	log.Info().Int64("client_id", id).Msg("client created")
	s.bumpGeneration(ctx)
	return id, nil
}

func (s *CommandService) DeleteClient(ctx context.Context, id int64) error {
	if err := validateID("client", id); err != nil {
		return err
	}
	if err := s.repo.DeleteClient(ctx, id); err != nil {
		log.Warn().Err(err).Int64("client_id", id).Msg("delete client failed")
		return err
	}
	log.Info().Int64("client_id", id).Msg("client deleted")
	s.bumpGeneration(ctx)
	return nil
}

func (s *CommandService) CreateReservation(ctx context.Context, r domain.NewReservation) (int64, error) {
	if err := validateID("client", r.ClientID); err != nil {
		return 0, err
	}
	if err := validateID("room", r.RoomID); err != nil {
		return 0, err
	}
	st, err := parseStay(r.Start, r.End)
	if err != nil {
		return 0, err
	}
	r.Start, r.End = st.Start, st.End

	id, err := s.repo.CreateReservation(ctx, r)
	if err != nil {
		log.Warn().Err(err).Int64("client_id", r.ClientID).Int64("room_id", r.RoomID).Msg("create reservation failed")
		return 0, err
	}
	log.Info().Int64("reservation_id", id).Int64("room_id", r.RoomID).Str("start", r.Start).Str("end", r.End).Msg("reservation created")
	s.bumpGeneration(ctx)
	return id, nil
}

// UpdateReservation applies ch. Room availability is only re-checked when the
// service was built with recheckOnEdit.
func (s *CommandService) UpdateReservation(ctx context.Context, ch domain.ReservationChange) error {
	if err := validateID("reservation", ch.ID); err != nil {
		return err
	}
	if err := validateID("room", ch.RoomID); err != nil {
		return err
	}
	st, err := parseStay(ch.Start, ch.End)
	if err != nil {
		return err
	}
	ch.Start, ch.End = st.Start, st.End

	if err := s.repo.UpdateReservation(ctx, ch, s.recheck); err != nil {
		log.Warn().Err(err).Int64("reservation_id", ch.ID).Msg("update reservation failed")
		return err
	}
	log.Info().Int64("reservation_id", ch.ID).Int64("room_id", ch.RoomID).Bool("rechecked", s.recheck).Msg("reservation updated")
	s.bumpGeneration(ctx)
	return nil
}

func (s *CommandService) DeleteReservation(ctx context.Context, id int64) error {
	if err := validateID("reservation", id); err != nil {
		return err
	}
	if err := s.repo.DeleteReservation(ctx, id); err != nil {
		log.Warn().Err(err).Int64("reservation_id", id).Msg("delete reservation failed")
		return err
	}
	log.Info().Int64("reservation_id", id).Msg("reservation deleted")
	s.bumpGeneration(ctx)
	return nil
}

func (s *CommandService) bumpGeneration(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if _, err := s.cache.Incr(ctx, generationKey); err != nil {
		// cached reads may be stale until their TTL expires
		log.Warn().Err(err).Msg("cache generation bump failed")
	}
}
