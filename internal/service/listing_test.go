package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stpnv0/StayBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validListingInput() domain.CreateListingInput {
	return domain.CreateListingInput{
		HostID:        1,
		Name:          "Loft",
		Description:   "Bright loft near the river",
		Location:      "Porto",
		PricePerNight: decimal.RequireFromString("100.00"),
	}
}

func TestListingService_Create_Success(t *testing.T) {
	repo := mocks.NewMockListingRepo(t)
	users := mocks.NewMockUserRepo(t)
	svc := NewListingService(repo, users, newTestLogger(t))

	in := validListingInput()
	users.EXPECT().GetByID(mock.Anything, int64(1)).Return(&domain.User{ID: 1, Role: domain.RoleHost}, nil)
	repo.EXPECT().Create(mock.Anything, in).Return(&domain.Listing{ID: 7, HostID: 1, Name: "Loft"}, nil)

	l, err := svc.Create(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, int64(7), l.ID)
}

func TestListingService_Create_GuestIsForbidden(t *testing.T) {
	users := mocks.NewMockUserRepo(t)
	svc := NewListingService(mocks.NewMockListingRepo(t), users, newTestLogger(t))

	users.EXPECT().GetByID(mock.Anything, int64(1)).Return(&domain.User{ID: 1, Role: domain.RoleGuest}, nil)

	_, err := svc.Create(context.Background(), validListingInput())
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestListingService_Create_Invalid(t *testing.T) {
	svc := NewListingService(nil, nil, newTestLogger(t))

	tests := map[string]func(*domain.CreateListingInput){
		"empty name":      func(in *domain.CreateListingInput) { in.Name = " " },
		"empty location":  func(in *domain.CreateListingInput) { in.Location = "" },
		"negative price":  func(in *domain.CreateListingInput) { in.PricePerNight = decimal.RequireFromString("-1") },
		"sub-cent price":  func(in *domain.CreateListingInput) { in.PricePerNight = decimal.RequireFromString("10.001") },
		"negative key id": func(in *domain.CreateListingInput) { in.ID = -3 },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			in := validListingInput()
			mutate(&in)
			_, err := svc.Create(context.Background(), in)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestListingService_UpdateAndDelete(t *testing.T) {
	repo := mocks.NewMockListingRepo(t)
	svc := NewListingService(repo, mocks.NewMockUserRepo(t), newTestLogger(t))

	name := "New name"
	upd := domain.UpdateListingInput{ListingID: 7, HostID: 2, Name: &name}
	repo.EXPECT().Update(mock.Anything, upd).Return(nil, domain.ErrForbidden)
	repo.EXPECT().Delete(mock.Anything, int64(7), int64(1)).Return(nil)

	_, err := svc.Update(context.Background(), upd)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	assert.NoError(t, svc.Delete(context.Background(), 7, 1))
}
