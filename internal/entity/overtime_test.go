package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetField_Strings(t *testing.T) {
	e := OvertimeEntry{}

	require.NoError(t, e.SetField(FieldEmployeeName, "Chen Wei"))
	require.NoError(t, e.SetField(FieldDate, "2025-11-22"))
	require.NoError(t, e.SetField(FieldStartTime, "08:00"))
	require.NoError(t, e.SetField(FieldEndTime, "09:30"))
	require.NoError(t, e.SetField(FieldReason, "quarterly closing"))
	require.NoError(t, e.SetField(FieldType, "comp time"))

	assert.Equal(t, "Chen Wei", e.EmployeeName)
	assert.Equal(t, "2025-11-22", e.Date)
	assert.Equal(t, "08:00", e.StartTime)
	assert.Equal(t, "09:30", e.EndTime)
	assert.Equal(t, "quarterly closing", e.Reason)
	assert.Equal(t, "comp time", e.Type)
}

func TestSetField_Hours(t *testing.T) {
	e := OvertimeEntry{}

	require.NoError(t, e.SetField(FieldHours, 1.5))
	assert.Equal(t, 1.5, e.Hours)

	require.NoError(t, e.SetField(FieldHours, 2))
	assert.Equal(t, 2.0, e.Hours)

	require.NoError(t, e.SetField(FieldHours, "3.25"))
	assert.Equal(t, 3.25, e.Hours)

	assert.Error(t, e.SetField(FieldHours, "not a number"))
	assert.Equal(t, 3.25, e.Hours, "failed edit must not clobber the field")
}

func TestSetField_UnknownKey(t *testing.T) {
	e := OvertimeEntry{}
	assert.Error(t, e.SetField("salary", "x"))
}

func TestSetField_TypeMismatch(t *testing.T) {
	e := OvertimeEntry{}
	assert.Error(t, e.SetField(FieldDate, 20251122))
}
