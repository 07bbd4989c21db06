package ruleset

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/holiday-engine/calendar"
	"github.com/warp/holiday-engine/config"
	"github.com/warp/holiday-engine/holiday"
	"github.com/warp/holiday-engine/store/sqlite"
)

func newPresetManager(t *testing.T, code string) *Manager {
	t.Helper()
	impl, err := New(config.Map{})
	require.NoError(t, err)
	m := impl.(*Manager)
	require.NoError(t, m.Init(holiday.Source{CalendarID: code}))
	return m
}

func dates(set holiday.Set, key string) []calendar.Date {
	var out []calendar.Date
	for _, h := range set.Sorted() {
		if h.Key == key {
			out = append(out, h.Date)
		}
	}
	return out
}

func TestFixedAndWeekdayRules(t *testing.T) {
	m := newPresetManager(t, "us")

	set, err := m.Holidays(2010)
	require.NoError(t, err)

	// Fixed date
	assert.Equal(t, []calendar.Date{calendar.NewDate(2010, time.July, 4)}, dates(set, "INDEPENDENCE"))
	// Fourth Thursday of November
	assert.Equal(t, []calendar.Date{calendar.NewDate(2010, time.November, 25)}, dates(set, "THANKSGIVING"))
	// Last Monday of May
	assert.Equal(t, []calendar.Date{calendar.NewDate(2010, time.May, 31)}, dates(set, "MEMORIAL"))
}

func TestValidityWindow(t *testing.T) {
	m := newPresetManager(t, "us")

	// GIVEN a rule valid from 1986
	before, err := m.Holidays(1985)
	require.NoError(t, err)
	after, err := m.Holidays(1986)
	require.NoError(t, err)

	// THEN it only fires from its first valid year on
	assert.Empty(t, dates(before, "MARTIN_LUTHER_KING"))
	assert.Equal(t, []calendar.Date{calendar.NewDate(1986, time.January, 20)}, dates(after, "MARTIN_LUTHER_KING"))
}

func TestEasterRelativeRules(t *testing.T) {
	m := newPresetManager(t, "de")

	// Easter Sunday 2010 is April 4th.
	set, err := m.Holidays(2010)
	require.NoError(t, err)

	assert.Equal(t, []calendar.Date{calendar.NewDate(2010, time.April, 2)}, dates(set, "GOOD_FRIDAY"))
	assert.Equal(t, []calendar.Date{calendar.NewDate(2010, time.April, 5)}, dates(set, "EASTER_MONDAY"))
	assert.Equal(t, []calendar.Date{calendar.NewDate(2010, time.May, 13)}, dates(set, "ASCENSION_DAY"))
	assert.Equal(t, []calendar.Date{calendar.NewDate(2010, time.May, 24)}, dates(set, "WHIT_MONDAY"))
}

func TestIslamicRules(t *testing.T) {
	m := newPresetManager(t, "ma")

	// GIVEN a Gregorian year that contains two Islamic new years
	set, err := m.Holidays(2008)
	require.NoError(t, err)

	// THEN both occurrences are present
	assert.Equal(t, []calendar.Date{
		calendar.NewDate(2008, time.January, 10),
		calendar.NewDate(2008, time.December, 29),
	}, dates(set, "ISLAMIC_NEW_YEAR"))
	assert.Equal(t, []calendar.Date{calendar.NewDate(2008, time.October, 2)}, dates(set, "ID_AL_FITR"))
}

func TestHierarchyPathNarrowsRules(t *testing.T) {
	m := newPresetManager(t, "us")

	country, err := m.Holidays(2010)
	require.NoError(t, err)
	state, err := m.Holidays(2010, "ny")
	require.NoError(t, err)
	city, err := m.Holidays(2010, "ny", "nyc")
	require.NoError(t, err)

	// Country-level set knows nothing of state holidays.
	assert.Empty(t, dates(country, "ELECTION"))

	// State adds election day on top of the country rules.
	assert.Equal(t, []calendar.Date{calendar.NewDate(2010, time.November, 2)}, dates(state, "ELECTION"))
	assert.NotEmpty(t, dates(state, "INDEPENDENCE"))

	// City inherits both levels above it.
	assert.NotEmpty(t, dates(city, "ELECTION"))
	assert.Equal(t, []calendar.Date{calendar.NewDate(2010, time.February, 12)}, dates(city, "LINCOLNS_BIRTHDAY"))
}

func TestUnknownRegionFails(t *testing.T) {
	m := newPresetManager(t, "us")

	_, err := m.Holidays(2010, "tx", "houston")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `no region "tx"`)
}

func TestUnofficialType(t *testing.T) {
	m := newPresetManager(t, "us")

	set, err := m.Holidays(2010, "ny")
	require.NoError(t, err)

	for _, h := range set.Sorted() {
		if h.Key == "ELECTION" {
			assert.Equal(t, holiday.TypeUnofficial, h.Type)
			return
		}
	}
	t.Fatal("ELECTION not found")
}

func TestHolidaysBetween(t *testing.T) {
	m := newPresetManager(t, "us")

	// GIVEN an interval spanning a year boundary
	iv := calendar.NewInterval(
		calendar.NewDate(2010, time.December, 20),
		calendar.NewDate(2011, time.January, 10),
	)

	set, err := m.HolidaysBetween(iv)
	require.NoError(t, err)

	// THEN only the dates inside the interval survive
	assert.Equal(t, []calendar.Date{calendar.NewDate(2010, time.December, 25)}, dates(set, "CHRISTMAS"))
	assert.Equal(t, []calendar.Date{calendar.NewDate(2011, time.January, 1)}, dates(set, "NEW_YEAR"))
	assert.Empty(t, dates(set, "INDEPENDENCE"))
}

func TestHolidaysBetween_InvalidInterval(t *testing.T) {
	m := newPresetManager(t, "us")

	iv := calendar.NewInterval(
		calendar.NewDate(2011, time.January, 1),
		calendar.NewDate(2010, time.January, 1),
	)
	_, err := m.HolidaysBetween(iv)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid interval")
}

func TestHierarchyMirrorsDefinition(t *testing.T) {
	m := newPresetManager(t, "us")

	h := m.Hierarchy()
	require.NotNil(t, h)
	assert.Equal(t, "us", h.ID)

	ny := h.Child("ny")
	require.NotNil(t, ny)
	require.NotNil(t, ny.Child("nyc"))
	assert.Nil(t, h.Child("tx"))
}

func TestInit_UnknownCalendar(t *testing.T) {
	impl, err := New(config.Map{})
	require.NoError(t, err)

	err = impl.Init(holiday.Source{CalendarID: "zz"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no calendar definition")
}

func TestInit_FromLocator(t *testing.T) {
	// GIVEN a definition file on disk
	path := filepath.Join(t.TempDir(), "tiny.json")
	def := `{"code": "tiny", "holidays": [{"type": "fixed", "key": "FOUNDING", "month": 6, "day": 15}]}`
	require.NoError(t, os.WriteFile(path, []byte(def), 0o644))

	impl, err := New(config.Map{})
	require.NoError(t, err)
	require.NoError(t, impl.Init(holiday.Source{URL: &url.URL{Scheme: "file", Path: path}}))

	// THEN the locator wins even without a calendar identifier
	set, err := impl.Holidays(2020)
	require.NoError(t, err)
	assert.True(t, set.Contains(calendar.NewDate(2020, time.June, 15)))
}

func TestInit_FromStore(t *testing.T) {
	// GIVEN a definition stored in SQLite
	dbPath := filepath.Join(t.TempDir(), "calendars.db")
	store, err := sqlite.New(dbPath)
	require.NoError(t, err)
	def := `{"code": "zz", "holidays": [{"type": "fixed", "key": "FOUNDING", "month": 3, "day": 3}]}`
	require.NoError(t, store.SaveDefinition(context.Background(), "zz", "Test", def))
	require.NoError(t, store.Close())

	impl, err := New(config.Map{config.KeyRulesetDB: dbPath})
	require.NoError(t, err)
	require.NoError(t, impl.Init(holiday.Source{CalendarID: "zz"}))

	set, err := impl.Holidays(2020)
	require.NoError(t, err)
	assert.True(t, set.Contains(calendar.NewDate(2020, time.March, 3)))
}

func TestParse_Validation(t *testing.T) {
	cases := []struct {
		name string
		json string
	}{
		{"unknown rule type", `{"code": "x", "holidays": [{"type": "lunar", "key": "K"}]}`},
		{"missing key", `{"code": "x", "holidays": [{"type": "fixed", "month": 1, "day": 1}]}`},
		{"fixed without day", `{"code": "x", "holidays": [{"type": "fixed", "key": "K", "month": 1}]}`},
		{"fixed day beyond february", `{"code": "x", "holidays": [{"type": "fixed", "key": "K", "month": 2, "day": 30}]}`},
		{"fixed day beyond april", `{"code": "x", "holidays": [{"type": "fixed", "key": "K", "month": 4, "day": 31}]}`},
		{"weekday without which", `{"code": "x", "holidays": [{"type": "fixed_weekday", "key": "K", "month": 1, "weekday": "monday"}]}`},
		{"islamic month out of range", `{"code": "x", "holidays": [{"type": "islamic", "key": "K", "islamic_month": 13, "islamic_day": 1}]}`},
		{"missing code", `{"holidays": []}`},
		{"not json", `holidays:`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.json))
			assert.Error(t, err)
		})
	}
}

func TestLeapDayRule(t *testing.T) {
	// GIVEN a fixed rule on February 29th
	def, err := Parse([]byte(`{"code": "x", "holidays": [{"type": "fixed", "key": "LEAP", "month": 2, "day": 29}]}`))
	require.NoError(t, err)

	// THEN it fires only in leap years
	leap, err := def.HolidaysForYear(2020, nil)
	require.NoError(t, err)
	assert.True(t, leap.Contains(calendar.NewDate(2020, time.February, 29)))

	common, err := def.HolidaysForYear(2021, nil)
	require.NoError(t, err)
	assert.Empty(t, common)
	assert.False(t, common.Contains(calendar.NewDate(2021, time.March, 1)))
}

func TestPresets_AllParse(t *testing.T) {
	for code, raw := range presets {
		def, err := Parse([]byte(raw))
		require.NoError(t, err, "preset %q", code)
		assert.Equal(t, code, def.Code)

		// Every preset must evaluate cleanly for a recent year.
		set, err := def.HolidaysForYear(2020, nil)
		require.NoError(t, err, "preset %q", code)
		assert.NotEmpty(t, set)
	}
}
