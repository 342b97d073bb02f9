package simulation

import (
	"math/rand"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/sysu-ecnc-dev/employee-simulator/backend/internal/domain"
)

// 毫秒换算成年后的量级远小于这个容差
const ageTolerance = 1e-6

func TestGenerate_Count(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	for _, count := range []int{1, 7, 100} {
		employees, err := Generate(rng, now, count, 18, 65)
		require.NoError(t, err)
		require.Len(t, employees, count)
	}
}

func TestGenerate_ZeroCount(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	employees, err := Generate(rng, now, 0, 18, 65)
	require.NoError(t, err)
	require.Empty(t, employees)
}

func TestGenerate_AgeWithinBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	minAge, maxAge := 18.0, 65.0

	employees, err := Generate(rng, now, 500, minAge, maxAge)
	require.NoError(t, err)

	for _, e := range employees {
		age := AgeOf(e.Birthdate.Time, now)
		require.GreaterOrEqual(t, age, minAge-ageTolerance)
		require.LessOrEqual(t, age, maxAge+ageTolerance)
		require.True(t, e.Birthdate.Before(now))
	}
}

func TestGenerate_EqualBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	employees, err := Generate(rng, now, 20, 30, 30)
	require.NoError(t, err)

	for _, e := range employees {
		require.InDelta(t, 30, AgeOf(e.Birthdate.Time, now), ageTolerance)
	}
}

func TestGenerate_NamesMatchGender(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	employees, err := Generate(rng, now, 200, 20, 40)
	require.NoError(t, err)

	for _, e := range employees {
		switch e.Gender {
		case domain.GenderMale:
			require.True(t, slices.Contains(maleNames, e.Name))
			require.True(t, slices.Contains(maleSurnames, e.Surname))
		case domain.GenderFemale:
			require.True(t, slices.Contains(femaleNames, e.Name))
			require.True(t, slices.Contains(femaleSurnames, e.Surname))
		default:
			t.Fatalf("未知的性别: %s", e.Gender)
		}

		require.Contains(t, workloads, e.Workload)
	}
}

func TestGenerate_InvalidInput(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name   string
		count  int
		minAge float64
		maxAge float64
	}{
		{name: "负数 count", count: -1, minAge: 18, maxAge: 65},
		{name: "负数年龄下限", count: 10, minAge: -1, maxAge: 65},
		{name: "下限大于上限", count: 10, minAge: 40, maxAge: 20},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Generate(rng, now, tc.count, tc.minAge, tc.maxAge)
			require.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestGenerate_SameSeedSameResult(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	first, err := Generate(rand.New(rand.NewSource(99)), now, 30, 18, 65)
	require.NoError(t, err)
	second, err := Generate(rand.New(rand.NewSource(99)), now, 30, 18, 65)
	require.NoError(t, err)

	require.Equal(t, first, second)
}
