// Package repotest provides in-memory repositories for tests.
package repotest

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"sea-haven/internal/data/entity"
	"sea-haven/internal/data/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store holds every collection behind one lock. Slices keep insertion order.
type Store struct {
	mu       sync.Mutex
	Rooms    []*entity.Room
	Bookings []*entity.Booking
	Reviews  []*entity.Review
	Revoked  map[string]time.Time

	// Err, when set, is returned by every call.
	Err error
}

func NewStore() *Store {
	return &Store{Revoked: map[string]time.Time{}}
}

// NewRepository wires a Store into a repository.Repository.
func NewRepository(s *Store) *repository.Repository {
	return &repository.Repository{
		Room:       roomRepo{s},
		Booking:    bookingRepo{s},
		Review:     reviewRepo{s},
		Stats:      statsRepo{s},
		Revocation: revocationRepo{s},
	}
}

// AddRoom appends a room with a fresh id and returns it.
func (s *Store) AddRoom(name string, price float64) *entity.Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	room := &entity.Room{ID: primitive.NewObjectID(), Name: name, Price: price}
	s.Rooms = append(s.Rooms, room)
	return room
}

// AddReview appends a review with a fresh id and returns it.
func (s *Store) AddReview(roomID, email string, rating int, at time.Time) *entity.Review {
	s.mu.Lock()
	defer s.mu.Unlock()
	review := &entity.Review{
		ID:         primitive.NewObjectID(),
		RoomID:     roomID,
		Email:      email,
		Rating:     entity.Rating(rating),
		ReviewDate: at,
	}
	s.Reviews = append(s.Reviews, review)
	return review
}

func (s *Store) ReviewCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Reviews)
}

func (s *Store) BookingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Bookings)
}

func (s *Store) FindBooking(id primitive.ObjectID) *entity.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.Bookings {
		if b.ID == id {
			c := *b
			return &c
		}
	}
	return nil
}

type roomRepo struct{ s *Store }

func (r roomRepo) FindByPriceRange(_ context.Context, minPrice, maxPrice float64) ([]*entity.Room, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	out := []*entity.Room{}
	for _, room := range r.s.Rooms {
		if room.Price >= minPrice && room.Price <= maxPrice {
			c := *room
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r roomRepo) FindByID(_ context.Context, id primitive.ObjectID) (*entity.Room, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	for _, room := range r.s.Rooms {
		if room.ID == id {
			c := *room
			return &c, nil
		}
	}
	return nil, nil
}

func (r roomRepo) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]*entity.Room, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	want := make(map[primitive.ObjectID]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	out := []*entity.Room{}
	for _, room := range r.s.Rooms {
		if want[room.ID] {
			c := *room
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r roomRepo) UpdateBooked(_ context.Context, id primitive.ObjectID, booked bool) (*entity.UpdateResult, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	for _, room := range r.s.Rooms {
		if room.ID == id {
			res := &entity.UpdateResult{MatchedCount: 1}
			if room.IsBooked != booked {
				res.ModifiedCount = 1
			}
			room.IsBooked = booked
			return res, nil
		}
	}
	return nil, fmt.Errorf("room %s: %w", id.Hex(), repository.ErrNotFound)
}

func (r roomRepo) Count(context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return 0, r.s.Err
	}
	return int64(len(r.s.Rooms)), nil
}

type bookingRepo struct{ s *Store }

func (r bookingRepo) Create(_ context.Context, booking *entity.Booking) (*entity.InsertResult, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	booking.ID = primitive.NewObjectID()
	c := *booking
	r.s.Bookings = append(r.s.Bookings, &c)
	return &entity.InsertResult{InsertedID: booking.ID}, nil
}

func (r bookingRepo) find(match func(*entity.Booking) bool) (*entity.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	for _, b := range r.s.Bookings {
		if match(b) {
			c := *b
			return &c, nil
		}
	}
	return nil, nil
}

func (r bookingRepo) FindByID(_ context.Context, id primitive.ObjectID) (*entity.Booking, error) {
	return r.find(func(b *entity.Booking) bool { return b.ID == id })
}

func (r bookingRepo) FindByEmail(_ context.Context, email string) ([]*entity.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	out := []*entity.Booking{}
	for _, b := range r.s.Bookings {
		if b.Email == email {
			c := *b
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r bookingRepo) FindByRoomID(_ context.Context, roomID string) (*entity.Booking, error) {
	return r.find(func(b *entity.Booking) bool { return b.RoomID == roomID })
}

func (r bookingRepo) FindByRoomAndEmail(_ context.Context, roomID, email string) (*entity.Booking, error) {
	return r.find(func(b *entity.Booking) bool { return b.RoomID == roomID && b.Email == email })
}

func (r bookingRepo) update(id primitive.ObjectID, apply func(*entity.Booking) bool) (*entity.UpdateResult, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	for _, b := range r.s.Bookings {
		if b.ID == id {
			res := &entity.UpdateResult{MatchedCount: 1}
			if apply(b) {
				res.ModifiedCount = 1
			}
			return res, nil
		}
	}
	return nil, fmt.Errorf("booking %s: %w", id.Hex(), repository.ErrNotFound)
}

func (r bookingRepo) SetCanceled(_ context.Context, id primitive.ObjectID, canceled bool) (*entity.UpdateResult, error) {
	return r.update(id, func(b *entity.Booking) bool {
		changed := b.IsCanceled != canceled
		b.IsCanceled = canceled
		return changed
	})
}

func (r bookingRepo) Reschedule(_ context.Context, id primitive.ObjectID, bookingDate, checkInDate string, canceled bool) (*entity.UpdateResult, error) {
	return r.update(id, func(b *entity.Booking) bool {
		changed := b.BookingDate != bookingDate || b.CheckInDate != checkInDate || b.IsCanceled != canceled
		b.BookingDate = bookingDate
		b.CheckInDate = checkInDate
		b.IsCanceled = canceled
		return changed
	})
}

type reviewRepo struct{ s *Store }

func (r reviewRepo) Create(_ context.Context, review *entity.Review) (*entity.InsertResult, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	review.ID = primitive.NewObjectID()
	c := *review
	r.s.Reviews = append(r.s.Reviews, &c)
	return &entity.InsertResult{InsertedID: review.ID}, nil
}

func (r reviewRepo) FindByRoomID(_ context.Context, roomID string) ([]*entity.Review, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	out := []*entity.Review{}
	for _, rv := range r.s.Reviews {
		if rv.RoomID == roomID {
			c := *rv
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r reviewRepo) CountByRoomID(ctx context.Context, roomID string) (int64, error) {
	reviews, err := r.FindByRoomID(ctx, roomID)
	return int64(len(reviews)), err
}

func (r reviewRepo) FindRecent(_ context.Context, limit int64) ([]*entity.Review, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	out := make([]*entity.Review, 0, len(r.s.Reviews))
	for _, rv := range r.s.Reviews {
		c := *rv
		out = append(out, &c)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ReviewDate.After(out[j].ReviewDate)
	})
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r reviewRepo) Count(context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return 0, r.s.Err
	}
	return int64(len(r.s.Reviews)), nil
}

// statsRepo computes the same shape as the mongo pipelines.
type statsRepo struct{ s *Store }

func (r statsRepo) TopRooms(_ context.Context, limit int64) ([]*entity.TopRoom, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	out := make([]*entity.TopRoom, 0, len(r.s.Rooms))
	for _, room := range r.s.Rooms {
		top := &entity.TopRoom{
			ID:          room.ID,
			Name:        room.Name,
			Description: room.Description,
			Image:       room.Image,
			Price:       room.Price,
		}
		// Reviews here are already decoded, so a fractional legacy string
		// such as "4.5" arrives truncated. The Mongo pipeline averages the
		// raw stored value as a double and would rank that case higher.
		var sum float64
		for _, rv := range r.s.Reviews {
			if rv.RoomID == room.ID.Hex() {
				top.TotalReviews++
				sum += float64(rv.Rating.Int())
			}
		}
		if top.TotalReviews > 0 {
			top.AverageRating = sum / float64(top.TotalReviews)
		}
		out = append(out, top)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].TotalReviews != out[j].TotalReviews {
			return out[i].TotalReviews > out[j].TotalReviews
		}
		return out[i].AverageRating > out[j].AverageRating
	})
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r statsRepo) RatingSum(context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return 0, r.s.Err
	}
	var sum int64
	for _, rv := range r.s.Reviews {
		sum += int64(rv.Rating)
	}
	return sum, nil
}

type revocationRepo struct{ s *Store }

func (r revocationRepo) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	r.s.Revoked[tokenID] = time.Now().Add(ttl)
	return nil
}

func (r revocationRepo) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return false, r.s.Err
	}
	until, ok := r.s.Revoked[tokenID]
	return ok && time.Now().Before(until), nil
}
