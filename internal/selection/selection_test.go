package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m-andrianov/BRB-BookingService/internal/domain"
	"github.com/m-andrianov/BRB-BookingService/pkg/ptr"
)

var testServices = []domain.Service{
	{ID: 1, Name: "Haircut", DurationMinutes: 30, Price: 25},
	{ID: 2, Name: "Beard trim", DurationMinutes: 20, Price: 15},
	{ID: 3, Name: "Coloring", DurationMinutes: 75, Price: 60},
}

var testPackages = []domain.ServicePackage{
	{ID: 10, Name: "Full grooming", DurationMinutes: 61, Price: 50, ServiceIDs: []int64{1, 2}},
	{ID: 11, Name: "Quick fix", DurationMinutes: 25, Price: 20},
}

func TestServicesDuration(t *testing.T) {
	assert.Equal(t, 30, ServicesDuration(testServices, []int64{1}))
	assert.Equal(t, 50, ServicesDuration(testServices, []int64{1, 2}))
	assert.Equal(t, 125, ServicesDuration(testServices, []int64{1, 2, 3}))
}

func TestServicesDuration_UnknownIDsIgnored(t *testing.T) {
	assert.Equal(t, 30, ServicesDuration(testServices, []int64{1, 999}))
	assert.Equal(t, 0, ServicesDuration(testServices, []int64{999}))
	assert.Equal(t, 0, ServicesDuration(testServices, nil))
}

func TestServicesDuration_DuplicatesNotDoubleCounted(t *testing.T) {
	assert.Equal(t, 30, ServicesDuration(testServices, []int64{1, 1, 1}))
}

func TestServicesPrice(t *testing.T) {
	assert.Equal(t, 40.0, ServicesPrice(testServices, []int64{1, 2}))
	assert.Equal(t, 0.0, ServicesPrice(testServices, []int64{999}))
}

func TestPackageLookup(t *testing.T) {
	assert.Equal(t, 61, PackageDuration(testPackages, 10))
	assert.Equal(t, 50.0, PackagePrice(testPackages, 10))

	// Отсутствующий пакет - ноль, не ошибка
	assert.Equal(t, 0, PackageDuration(testPackages, 999))
	assert.Equal(t, 0.0, PackagePrice(testPackages, 999))
}

func TestRoundToSlots(t *testing.T) {
	tests := []struct {
		name        string
		duration    int
		wantRounded int
		wantSlots   int
	}{
		{"zero", 0, 30, 1},
		{"negative", -10, 30, 1},
		{"under one slot", 20, 30, 1},
		{"exactly one slot", 30, 30, 1},
		{"just over one slot", 31, 60, 2},
		{"exactly two slots", 60, 60, 2},
		{"just over two slots", 61, 90, 3},
		{"exactly three slots", 90, 90, 3},
		{"long", 125, 150, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rounded, slots := RoundToSlots(tt.duration)
			assert.Equal(t, tt.wantRounded, rounded)
			assert.Equal(t, tt.wantSlots, slots)
		})
	}
}

func TestRoundToSlots_Monotonicity(t *testing.T) {
	for d := 0; d <= 300; d++ {
		rounded, slots := RoundToSlots(d)

		assert.Zero(t, rounded%30, "duration %d: rounded must be a multiple of 30", d)
		assert.GreaterOrEqual(t, rounded, 30, "duration %d", d)
		assert.GreaterOrEqual(t, rounded, d, "duration %d: never rounds down", d)
		assert.LessOrEqual(t, rounded, d+30, "duration %d: rounds to the nearest slot boundary", d)
		assert.Equal(t, rounded/30, slots, "duration %d", d)
	}
}

func TestValidateMode(t *testing.T) {
	pkgID := ptr.Ptr(int64(10))

	assert.NoError(t, ValidateMode(domain.ModeServices, []int64{1}, nil))
	assert.NoError(t, ValidateMode(domain.ModePackage, nil, pkgID))

	assert.ErrorIs(t, ValidateMode(domain.ModeServices, []int64{1}, pkgID), ErrModeConflict)
	assert.ErrorIs(t, ValidateMode(domain.ModePackage, []int64{1}, pkgID), ErrModeConflict)
	assert.ErrorIs(t, ValidateMode(domain.ModeServices, nil, nil), ErrEmptySelection)
	assert.ErrorIs(t, ValidateMode(domain.ModePackage, nil, nil), ErrEmptySelection)
	assert.ErrorIs(t, ValidateMode(domain.SelectionMode("vip"), []int64{1}, nil), ErrUnknownMode)
}

func TestNew_Services(t *testing.T) {
	sel := New(domain.ModeServices, testServices, testPackages, []int64{1, 2}, nil)

	assert.Equal(t, domain.ModeServices, sel.Mode)
	assert.ElementsMatch(t, []int64{1, 2}, sel.ServiceIDs)
	assert.Nil(t, sel.PackageID)
	assert.Equal(t, 50, sel.DurationMinutes)
	assert.Equal(t, 60, sel.RoundedDurationMinutes)
	assert.Equal(t, 2, sel.RequiredSlots)
	assert.Equal(t, 40.0, sel.SubtotalPrice)
}

func TestNew_Package(t *testing.T) {
	sel := New(domain.ModePackage, testServices, testPackages, nil, ptr.Ptr(int64(10)))

	assert.Equal(t, domain.ModePackage, sel.Mode)
	assert.Empty(t, sel.ServiceIDs)
	assert.NotNil(t, sel.PackageID)
	assert.Equal(t, int64(10), *sel.PackageID)
	assert.Equal(t, 61, sel.DurationMinutes)
	assert.Equal(t, 90, sel.RoundedDurationMinutes)
	assert.Equal(t, 3, sel.RequiredSlots)
	assert.Equal(t, 50.0, sel.SubtotalPrice)
}

func TestNew_XORInvariant(t *testing.T) {
	// Конструктор никогда не возвращает выбор с услугами и пакетом одновременно
	cases := []struct {
		mode       domain.SelectionMode
		serviceIDs []int64
		packageID  *int64
	}{
		{domain.ModeServices, []int64{1}, nil},
		{domain.ModeServices, []int64{1}, ptr.Ptr(int64(10))},
		{domain.ModeServices, nil, nil},
		{domain.ModePackage, nil, ptr.Ptr(int64(10))},
		{domain.ModePackage, []int64{1}, ptr.Ptr(int64(10))},
		{domain.ModePackage, nil, nil},
		{domain.SelectionMode("vip"), []int64{1}, ptr.Ptr(int64(10))},
	}

	for _, tc := range cases {
		sel := New(tc.mode, testServices, testPackages, tc.serviceIDs, tc.packageID)
		both := len(sel.ServiceIDs) > 0 && sel.PackageID != nil
		assert.False(t, both, "mode=%s serviceIDs=%v packageID=%v", tc.mode, tc.serviceIDs, tc.packageID)
	}
}

func TestNew_InvalidSelectionDegradesToEmpty(t *testing.T) {
	sel := New(domain.ModeServices, testServices, testPackages, []int64{1}, ptr.Ptr(int64(10)))

	assert.Equal(t, domain.ModeServices, sel.Mode)
	assert.True(t, sel.IsEmpty())
	assert.Zero(t, sel.RequiredSlots)
	assert.Zero(t, sel.SubtotalPrice)
}

func TestNew_StaleIDsStillRoundToMinimum(t *testing.T) {
	// Выбор из одних устаревших id даёт нулевую длительность, но валидный
	// выбор: минимум один слот
	sel := New(domain.ModeServices, testServices, testPackages, []int64{999}, nil)

	assert.Equal(t, 0, sel.DurationMinutes)
	assert.Equal(t, 30, sel.RoundedDurationMinutes)
	assert.Equal(t, 1, sel.RequiredSlots)
}
