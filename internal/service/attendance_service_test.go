package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kintai-dev/kintai/internal/domain"
	"github.com/kintai-dev/kintai/internal/repository"
	"github.com/kintai-dev/kintai/internal/testutil"
)

type attendanceFixture struct {
	db         *sql.DB
	attendance AttendanceService
	employees  EmployeeService
	settings   SettingsService
	stamps     repository.StampRepo
}

func newAttendanceFixture(t *testing.T) *attendanceFixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	stampRepo := repository.NewSQLiteStampRepo(database)
	employeeRepo := repository.NewSQLiteEmployeeRepo(database)
	settingsRepo := repository.NewSQLiteSettingsRepo(database)
	uow := testutil.NewTestUoW(database)

	return &attendanceFixture{
		db:         database,
		attendance: NewAttendanceService(stampRepo, employeeRepo, settingsRepo, uow),
		employees:  NewEmployeeService(employeeRepo),
		settings:   NewSettingsService(settingsRepo),
		stamps:     stampRepo,
	}
}

func (f *attendanceFixture) addEmployee(t *testing.T, code string) {
	t.Helper()
	emp := testutil.NewTestEmployee("Taro Yamada", testutil.WithCode(code))
	require.NoError(t, f.employees.Create(context.Background(), emp))
}

func at(hour, min int) time.Time {
	return time.Date(2024, 2, 13, hour, min, 0, 0, time.Local)
}

func TestRecordStamp_InThenOut(t *testing.T) {
	f := newAttendanceFixture(t)
	f.addEmployee(t, "EMP001")
	ctx := context.Background()

	in, err := f.attendance.RecordStamp(ctx, "EMP001", domain.StampIn, at(9, 0))
	require.NoError(t, err)
	assert.Equal(t, domain.SequenceOK, in.Sequence)
	assert.Equal(t, "2024-02-13", in.Event.WorkDate)

	out, err := f.attendance.RecordStamp(ctx, "EMP001", domain.StampOut, at(17, 30))
	require.NoError(t, err)
	assert.Equal(t, domain.SequenceOK, out.Sequence)

	events, err := f.stamps.ListByWorkDate(ctx, "EMP001", "2024-02-13")
	require.NoError(t, err)
	assert.Len(t, events, 2)
}

func TestRecordStamp_DuplicateKindSameDayRejected(t *testing.T) {
	f := newAttendanceFixture(t)
	f.addEmployee(t, "EMP001")
	ctx := context.Background()

	_, err := f.attendance.RecordStamp(ctx, "EMP001", domain.StampIn, at(9, 0))
	require.NoError(t, err)

	_, err = f.attendance.RecordStamp(ctx, "EMP001", domain.StampIn, at(9, 5))
	assert.ErrorIs(t, err, ErrDuplicateStamp)

	events, listErr := f.stamps.ListByWorkDate(ctx, "EMP001", "2024-02-13")
	require.NoError(t, listErr)
	assert.Len(t, events, 1, "rejected stamp must not be persisted")
}

func TestRecordStamp_ForgottenOutIsAdvisory(t *testing.T) {
	f := newAttendanceFixture(t)
	f.addEmployee(t, "EMP001")
	ctx := context.Background()

	_, err := f.attendance.RecordStamp(ctx, "EMP001", domain.StampIn,
		time.Date(2024, 2, 12, 9, 0, 0, 0, time.Local))
	require.NoError(t, err)

	// Next day's IN with no intervening OUT: flagged but recorded.
	res, err := f.attendance.RecordStamp(ctx, "EMP001", domain.StampIn, at(9, 0))
	require.NoError(t, err)
	assert.Equal(t, domain.SequenceMissingPriorOut, res.Sequence)
	assert.False(t, res.Sequence.Fatal())

	events, err := f.stamps.ListByWorkDate(ctx, "EMP001", "2024-02-13")
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestRecordStamp_ForgottenInIsAdvisory(t *testing.T) {
	f := newAttendanceFixture(t)
	f.addEmployee(t, "EMP001")
	ctx := context.Background()

	_, err := f.attendance.RecordStamp(ctx, "EMP001", domain.StampOut,
		time.Date(2024, 2, 12, 17, 0, 0, 0, time.Local))
	require.NoError(t, err)

	res, err := f.attendance.RecordStamp(ctx, "EMP001", domain.StampOut, at(17, 0))
	require.NoError(t, err)
	assert.Equal(t, domain.SequenceMissingPriorIn, res.Sequence)
}

func TestRecordStamp_UnknownEmployee(t *testing.T) {
	f := newAttendanceFixture(t)

	_, err := f.attendance.RecordStamp(context.Background(), "GHOST", domain.StampIn, at(9, 0))
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestRecordStamp_AppliesRoundingSettings(t *testing.T) {
	f := newAttendanceFixture(t)
	f.addEmployee(t, "EMP001")
	ctx := context.Background()

	require.NoError(t, f.settings.Update(ctx, domain.Settings{
		Rounding: domain.RoundingConfig{
			IntervalMin:  15,
			InDirection:  domain.RoundUp,
			OutDirection: domain.RoundDown,
		},
	}))

	in, err := f.attendance.RecordStamp(ctx, "EMP001", domain.StampIn, at(9, 7))
	require.NoError(t, err)
	assert.Equal(t, at(9, 15), in.Event.RoundedTime)
	assert.Equal(t, at(9, 7), in.Event.ActualTime, "actual time is kept unrounded")

	out, err := f.attendance.RecordStamp(ctx, "EMP001", domain.StampOut, at(17, 29))
	require.NoError(t, err)
	assert.Equal(t, at(17, 15), out.Event.RoundedTime)
}

func TestRecordStamp_NightShiftCrossesMidnight(t *testing.T) {
	f := newAttendanceFixture(t)
	f.addEmployee(t, "EMP001")
	ctx := context.Background()

	require.NoError(t, f.settings.Update(ctx, domain.Settings{
		Rounding: domain.RoundingConfig{InDirection: domain.RoundUp, OutDirection: domain.RoundDown},
		Cutoff:   domain.CutoffConfig{Hour: 3, Minute: 0},
	}))

	_, err := f.attendance.RecordStamp(ctx, "EMP001", domain.StampIn,
		time.Date(2024, 2, 13, 22, 0, 0, 0, time.Local))
	require.NoError(t, err)

	// 00:30 next calendar day, still before the 03:00 cutoff: same work date,
	// so the OUT pairs with yesterday's IN instead of tripping a duplicate.
	out, err := f.attendance.RecordStamp(ctx, "EMP001", domain.StampOut,
		time.Date(2024, 2, 14, 0, 30, 0, 0, time.Local))
	require.NoError(t, err)
	assert.Equal(t, "2024-02-13", out.Event.WorkDate)
	assert.Equal(t, domain.SequenceOK, out.Sequence)
}

func TestPreviewStamp_DoesNotPersist(t *testing.T) {
	f := newAttendanceFixture(t)
	f.addEmployee(t, "EMP001")
	ctx := context.Background()

	preview, err := f.attendance.PreviewStamp(ctx, "EMP001", domain.StampIn, at(9, 0))
	require.NoError(t, err)
	assert.Equal(t, domain.SequenceOK, preview.Sequence)
	assert.Nil(t, preview.Latest)

	events, err := f.stamps.ListByWorkDate(ctx, "EMP001", "2024-02-13")
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestPreviewStamp_FlagsDuplicate(t *testing.T) {
	f := newAttendanceFixture(t)
	f.addEmployee(t, "EMP001")
	ctx := context.Background()

	_, err := f.attendance.RecordStamp(ctx, "EMP001", domain.StampIn, at(9, 0))
	require.NoError(t, err)

	preview, err := f.attendance.PreviewStamp(ctx, "EMP001", domain.StampIn, at(10, 0))
	require.NoError(t, err)
	assert.Equal(t, domain.SequenceDuplicate, preview.Sequence)
	assert.True(t, preview.Sequence.Fatal())
	require.NotNil(t, preview.Latest)
	assert.Equal(t, domain.StampIn, preview.Latest.Kind)
}

func TestEditDay_ReplacesDay(t *testing.T) {
	f := newAttendanceFixture(t)
	f.addEmployee(t, "EMP001")
	ctx := context.Background()

	_, err := f.attendance.RecordStamp(ctx, "EMP001", domain.StampIn, at(8, 47))
	require.NoError(t, err)

	events, err := f.attendance.EditDay(ctx, "EMP001", "2024-02-13", []EditPair{
		{In: "09:00", Out: "12:00"},
		{In: "13:00", Out: "17:30"},
	})
	require.NoError(t, err)
	assert.Len(t, events, 4)

	stored, err := f.stamps.ListByWorkDate(ctx, "EMP001", "2024-02-13")
	require.NoError(t, err)
	require.Len(t, stored, 4)
	assert.Equal(t, domain.StampIn, stored[0].Kind)
	assert.True(t, stored[0].ActualTime.Equal(at(9, 0)))
	assert.Equal(t, domain.StampOut, stored[3].Kind)
}

func TestEditDay_BlankSlotsSkipped(t *testing.T) {
	f := newAttendanceFixture(t)
	f.addEmployee(t, "EMP001")
	ctx := context.Background()

	events, err := f.attendance.EditDay(ctx, "EMP001", "2024-02-13", []EditPair{
		{In: "09:00", Out: "-"},
		{In: "", Out: "17:30"},
	})
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, domain.StampIn, events[0].Kind)
	assert.Equal(t, domain.StampOut, events[1].Kind)
}

func TestEditDay_MalformedTimeLeavesDayUntouched(t *testing.T) {
	f := newAttendanceFixture(t)
	f.addEmployee(t, "EMP001")
	ctx := context.Background()

	_, err := f.attendance.RecordStamp(ctx, "EMP001", domain.StampIn, at(9, 0))
	require.NoError(t, err)

	_, err = f.attendance.EditDay(ctx, "EMP001", "2024-02-13", []EditPair{
		{In: "25:99", Out: "17:00"},
	})
	assert.ErrorIs(t, err, ErrMalformedManualTime)

	events, listErr := f.stamps.ListByWorkDate(ctx, "EMP001", "2024-02-13")
	require.NoError(t, listErr)
	assert.Len(t, events, 1, "failed edit must not delete the existing day")
}

func TestEditDay_OverCapRollsBack(t *testing.T) {
	f := newAttendanceFixture(t)
	f.addEmployee(t, "EMP001")
	ctx := context.Background()

	_, err := f.attendance.RecordStamp(ctx, "EMP001", domain.StampIn, at(9, 0))
	require.NoError(t, err)

	// Six pairs is twelve events, over the ten-per-day cap: the whole
	// replacement fails and the original single stamp survives.
	var pairs []EditPair
	for i := 0; i < 6; i++ {
		pairs = append(pairs, EditPair{
			In:  time.Date(2024, 2, 13, 6+i*2, 0, 0, 0, time.Local).Format("15:04"),
			Out: time.Date(2024, 2, 13, 7+i*2, 0, 0, 0, time.Local).Format("15:04"),
		})
	}
	_, err = f.attendance.EditDay(ctx, "EMP001", "2024-02-13", pairs)
	assert.ErrorIs(t, err, repository.ErrCapacityExceeded)

	events, listErr := f.stamps.ListByWorkDate(ctx, "EMP001", "2024-02-13")
	require.NoError(t, listErr)
	require.Len(t, events, 1)
	assert.True(t, events[0].ActualTime.Equal(at(9, 0)))
}

func TestMonthlyReport(t *testing.T) {
	f := newAttendanceFixture(t)
	f.addEmployee(t, "EMP001")
	ctx := context.Background()

	for _, stamp := range []struct {
		kind domain.StampKind
		t    time.Time
	}{
		{domain.StampIn, time.Date(2024, 2, 13, 9, 0, 0, 0, time.Local)},
		{domain.StampOut, time.Date(2024, 2, 13, 12, 0, 0, 0, time.Local)},
		{domain.StampIn, time.Date(2024, 2, 14, 13, 0, 0, 0, time.Local)},
		{domain.StampOut, time.Date(2024, 2, 14, 17, 30, 0, 0, time.Local)},
	} {
		_, err := f.attendance.RecordStamp(ctx, "EMP001", stamp.kind, stamp.t)
		require.NoError(t, err)
	}

	report, err := f.attendance.MonthlyReport(ctx, "EMP001", 2024, time.February)
	require.NoError(t, err)
	assert.Equal(t, "EMP001", report.EmployeeCode)
	require.Len(t, report.Days, 29, "leap February renders a full grid")

	assert.Equal(t, 3*time.Hour, report.Days[12].TotalWorked())
	assert.Equal(t, 4*time.Hour+30*time.Minute, report.Days[13].TotalWorked())
	assert.Empty(t, report.Days[0].Events)
	assert.Equal(t, 7*time.Hour+30*time.Minute, report.Total)
}

func TestLatestStamp(t *testing.T) {
	f := newAttendanceFixture(t)
	f.addEmployee(t, "EMP001")
	ctx := context.Background()

	_, err := f.attendance.LatestStamp(ctx, "EMP001")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = f.attendance.RecordStamp(ctx, "EMP001", domain.StampIn, at(9, 0))
	require.NoError(t, err)

	latest, err := f.attendance.LatestStamp(ctx, "EMP001")
	require.NoError(t, err)
	assert.Equal(t, domain.StampIn, latest.Kind)
}
