package vrt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// ControlCAM with controllee-enable,
// controllee-format UUID, action-mode Execute, timing-control Device
// must round-trip and read back Device on the timing-control field.
func TestCAMControlRoundTripTimingModeDevice(t *testing.T) {
	var c CAM
	c.SetControlleeEnable(true)
	c.SetControlleeFormat(IdentifierFormatUUID)
	c.SetActionMode(ActionModeExecute)
	c.SetTimingControl(TimestampControlDevice)

	buf := make([]byte, 4)
	c.PackInto(buf)

	var c2 CAM
	c2.UnpackFrom(buf)
	assert.True(t, c2.ControlleeEnable())
	assert.Equal(t, IdentifierFormatUUID, c2.ControlleeFormat())
	assert.Equal(t, ActionModeExecute, c2.ActionMode())
	assert.Equal(t, TimestampControlDevice, c2.TimingControl())
}

func TestCAMAcknowledgeBitsShareControlRequestBits(t *testing.T) {
	var c CAM
	c.SetRequestWarnings(true)
	assert.True(t, c.AckWarnings())

	var ack CAM
	ack.SetAckValidation(true)
	ack.SetPartialAction(true)
	ack.SetScheduledOrExecuted(true)
	buf := make([]byte, 4)
	ack.PackInto(buf)

	var ack2 CAM
	ack2.UnpackFrom(buf)
	assert.True(t, ack2.AckValidation())
	assert.True(t, ack2.PartialAction())
	assert.True(t, ack2.ScheduledOrExecuted())
	assert.True(t, ack2.RequestValidationAck())
}
