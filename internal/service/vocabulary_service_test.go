package service_test

import (
	"context"
	"testing"

	"github.com/dom/ep-app-api/internal/domain"
	"github.com/dom/ep-app-api/internal/repository/memory"
	"github.com/dom/ep-app-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVocabularyService_Seed(t *testing.T) {
	ctx := context.Background()

	initial := domain.Vocabulary{
		SeizureTypes: []domain.SeizureType{{Name: "Absence"}, {Name: "Atonic"}},
		ContactTypes: []domain.ContactType{{Name: "Neurologist", Category: domain.CategoryMedical}},
	}
	next := domain.Vocabulary{
		SeizureTypes: []domain.SeizureType{{Name: "Tonic", Description: "Stiffening"}},
		ContactTypes: []domain.ContactType{{Name: "Friend", Category: domain.CategoryPersonal}},
	}

	tests := []struct {
		name             string
		reset            bool
		wantSeizureTypes []string
		wantContactTypes []string
	}{
		{
			name:             "upsert keeps existing entries",
			reset:            false,
			wantSeizureTypes: []string{"Absence", "Atonic", "Tonic"},
			wantContactTypes: []string{"Neurologist", "Friend"},
		},
		{
			name:             "reset replaces the tables",
			reset:            true,
			wantSeizureTypes: []string{"Tonic"},
			wantContactTypes: []string{"Friend"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vocabService := service.NewVocabularyService(memory.NewVocabularyRepository())
			require.NoError(t, vocabService.Seed(ctx, initial, true))
			require.NoError(t, vocabService.Seed(ctx, next, tt.reset))

			seizureTypes, err := vocabService.SeizureTypes(ctx)
			require.NoError(t, err)
			names := make([]string, 0, len(seizureTypes))
			for _, st := range seizureTypes {
				names = append(names, st.Name)
			}
			assert.Equal(t, tt.wantSeizureTypes, names)

			contactTypes, err := vocabService.ContactTypes(ctx)
			require.NoError(t, err)
			names = names[:0]
			for _, ct := range contactTypes {
				names = append(names, ct.Name)
			}
			assert.Equal(t, tt.wantContactTypes, names)
		})
	}
}

func TestVocabularyService_SeedRejectsInvalid(t *testing.T) {
	vocabService := service.NewVocabularyService(memory.NewVocabularyRepository())

	err := vocabService.Seed(context.Background(), domain.Vocabulary{
		SeizureTypes: []domain.SeizureType{{Name: "Absence"}},
		ContactTypes: []domain.ContactType{{Name: "Friend", Category: "enemy"}},
	}, true)
	assert.Error(t, err)

	seizureTypes, err := vocabService.SeizureTypes(context.Background())
	require.NoError(t, err)
	assert.Empty(t, seizureTypes)
}
