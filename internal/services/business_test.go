package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/townlink/internal/models"
	"github.com/sbilibin2017/townlink/internal/repositories"
	"github.com/sbilibin2017/townlink/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func validBusinessInput() models.BusinessInput {
	return models.BusinessInput{
		Name:        "Joe's Diner",
		Category:    "Restaurant",
		Location:    "Main St",
		Description: "Burgers and shakes",
	}
}

func TestBusinessService_Create(t *testing.T) {
	tests := []struct {
		name      string
		input     func() models.BusinessInput
		mockSetup func(w *services.MockBusinessWriter)
		wantID    int64
		wantErr   error
		check     func(t *testing.T, saved *models.BusinessDB)
	}{
		{
			name:   "defaults image and owner",
			input:  validBusinessInput,
			wantID: 7,
			check: func(t *testing.T, saved *models.BusinessDB) {
				require.NotNil(t, saved.UserID)
				assert.Equal(t, int64(42), *saved.UserID)
				assert.Equal(t, models.DefaultBusinessImage, saved.Image)
				assert.Zero(t, saved.Rating)
				assert.Nil(t, saved.Latitude)
				assert.Nil(t, saved.Longitude)
			},
		},
		{
			name: "keeps provided image and coordinates",
			input: func() models.BusinessInput {
				in := validBusinessInput()
				in.Image = "https://example.com/joe.png"
				in.Latitude = ptr(40.7)
				in.Longitude = ptr(-74.0)
				return in
			},
			wantID: 8,
			check: func(t *testing.T, saved *models.BusinessDB) {
				assert.Equal(t, "https://example.com/joe.png", saved.Image)
				require.NotNil(t, saved.Latitude)
				require.NotNil(t, saved.Longitude)
				assert.Equal(t, 40.7, *saved.Latitude)
				assert.Equal(t, -74.0, *saved.Longitude)
			},
		},
		{
			name: "single coordinate is dropped",
			input: func() models.BusinessInput {
				in := validBusinessInput()
				in.Latitude = ptr(40.7)
				return in
			},
			wantID: 9,
			check: func(t *testing.T, saved *models.BusinessDB) {
				assert.Nil(t, saved.Latitude)
				assert.Nil(t, saved.Longitude)
			},
		},
		{
			name: "fields are trimmed",
			input: func() models.BusinessInput {
				in := validBusinessInput()
				in.Name = "  Joe's Diner  "
				in.Phone = " 555-0100 "
				return in
			},
			wantID: 10,
			check: func(t *testing.T, saved *models.BusinessDB) {
				assert.Equal(t, "Joe's Diner", saved.Name)
				assert.Equal(t, "555-0100", saved.Phone)
			},
		},
		{
			name: "missing description",
			input: func() models.BusinessInput {
				in := validBusinessInput()
				in.Description = ""
				return in
			},
			wantErr: services.ErrInvalidInput,
		},
		{
			name: "blank name",
			input: func() models.BusinessInput {
				in := validBusinessInput()
				in.Name = "   "
				return in
			},
			wantErr: services.ErrInvalidInput,
		},
		{
			name:  "writer error",
			input: validBusinessInput,
			mockSetup: func(w *services.MockBusinessWriter) {
				w.EXPECT().Save(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("insert failed"))
			},
			wantErr: errors.New("insert failed"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockReader := services.NewMockBusinessReader(ctrl)
			mockWriter := services.NewMockBusinessWriter(ctrl)

			var saved *models.BusinessDB
			if tt.mockSetup != nil {
				tt.mockSetup(mockWriter)
			} else if tt.wantErr == nil {
				mockWriter.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, b *models.BusinessDB) (int64, error) {
						saved = b
						return tt.wantID, nil
					})
			}

			svc := services.NewBusinessService(mockReader, mockWriter, nil)
			id, err := svc.Create(context.Background(), 42, tt.input())

			switch {
			case tt.wantErr == nil:
				require.NoError(t, err)
				assert.Equal(t, tt.wantID, id)
				require.NotNil(t, saved)
				tt.check(t, saved)
			case errors.Is(tt.wantErr, services.ErrInvalidInput):
				assert.ErrorIs(t, err, services.ErrInvalidInput)
				assert.Zero(t, id)
			default:
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Zero(t, id)
			}
		})
	}
}

func TestBusinessService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockBusinessReader(ctrl)
	svc := services.NewBusinessService(mockReader, services.NewMockBusinessWriter(ctrl), nil)

	mockReader.EXPECT().List(gomock.Any()).Return(nil, nil)
	businesses, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, businesses)
	assert.Empty(t, businesses)

	want := []models.BusinessDB{{BusinessID: 1, Name: "A"}, {BusinessID: 2, Name: "B"}}
	mockReader.EXPECT().List(gomock.Any()).Return(want, nil)
	businesses, err = svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, businesses)

	mockReader.EXPECT().List(gomock.Any()).Return(nil, errors.New("db down"))
	_, err = svc.List(context.Background())
	assert.EqualError(t, err, "db down")
}

func TestBusinessService_Get(t *testing.T) {
	business := &models.BusinessDB{BusinessID: 3, Name: "Cafe", Rating: 4.5}

	tests := []struct {
		name      string
		withCache bool
		mockSetup func(r *services.MockBusinessReader, c *services.MockBusinessCache)
		want      *models.BusinessDB
		wantErr   error
	}{
		{
			name: "found without cache",
			mockSetup: func(r *services.MockBusinessReader, c *services.MockBusinessCache) {
				r.EXPECT().GetByID(gomock.Any(), int64(3)).Return(business, nil)
			},
			want: business,
		},
		{
			name: "not found",
			mockSetup: func(r *services.MockBusinessReader, c *services.MockBusinessCache) {
				r.EXPECT().GetByID(gomock.Any(), int64(3)).Return(nil, nil)
			},
			wantErr: services.ErrNotFound,
		},
		{
			name:      "cache hit skips database",
			withCache: true,
			mockSetup: func(r *services.MockBusinessReader, c *services.MockBusinessCache) {
				c.EXPECT().Get(gomock.Any(), int64(3)).Return(business, nil)
			},
			want: business,
		},
		{
			name:      "cache miss populates cache",
			withCache: true,
			mockSetup: func(r *services.MockBusinessReader, c *services.MockBusinessCache) {
				c.EXPECT().Get(gomock.Any(), int64(3)).Return(nil, repositories.ErrCacheMiss)
				r.EXPECT().GetByID(gomock.Any(), int64(3)).Return(business, nil)
				c.EXPECT().Set(gomock.Any(), business).Return(nil)
			},
			want: business,
		},
		{
			name:      "cache errors are not fatal",
			withCache: true,
			mockSetup: func(r *services.MockBusinessReader, c *services.MockBusinessCache) {
				c.EXPECT().Get(gomock.Any(), int64(3)).Return(nil, errors.New("redis down"))
				r.EXPECT().GetByID(gomock.Any(), int64(3)).Return(business, nil)
				c.EXPECT().Set(gomock.Any(), business).Return(errors.New("redis down"))
			},
			want: business,
		},
		{
			name:      "not found is not cached",
			withCache: true,
			mockSetup: func(r *services.MockBusinessReader, c *services.MockBusinessCache) {
				c.EXPECT().Get(gomock.Any(), int64(3)).Return(nil, repositories.ErrCacheMiss)
				r.EXPECT().GetByID(gomock.Any(), int64(3)).Return(nil, nil)
			},
			wantErr: services.ErrNotFound,
		},
		{
			name: "reader error",
			mockSetup: func(r *services.MockBusinessReader, c *services.MockBusinessCache) {
				r.EXPECT().GetByID(gomock.Any(), int64(3)).Return(nil, errors.New("db down"))
			},
			wantErr: errors.New("db down"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockReader := services.NewMockBusinessReader(ctrl)
			mockCache := services.NewMockBusinessCache(ctrl)
			tt.mockSetup(mockReader, mockCache)

			var svc *services.BusinessService
			if tt.withCache {
				svc = services.NewBusinessService(mockReader, services.NewMockBusinessWriter(ctrl), mockCache)
			} else {
				svc = services.NewBusinessService(mockReader, services.NewMockBusinessWriter(ctrl), nil)
			}

			got, err := svc.Get(context.Background(), 3)
			if tt.wantErr != nil {
				if errors.Is(tt.wantErr, services.ErrNotFound) {
					assert.ErrorIs(t, err, services.ErrNotFound)
				} else {
					assert.EqualError(t, err, tt.wantErr.Error())
				}
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
