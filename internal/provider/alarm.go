package provider

import (
	"strconv"
	"time"
)

const (
	targetChannelPush = "push"
	alarmGroupPrefix  = "alarm_"
	alarmHeadingTitle = "🚨 ALARM: "
	timeOfDayLayout   = "3:04:05 PM"
)

// AlarmTemplate carries the static parts of every vibration alarm.
type AlarmTemplate struct {
	AppID            string
	AndroidChannelID string
	Sound            string
	Priority         int
	Message          string
	Location         *time.Location
}

// BuildAlarm assembles the push payload for one detected vibration.
// The android_group is derived from now in milliseconds so that every alarm
// lands in its own group and is never collapsed on the device.
func BuildAlarm(userID string, now time.Time, tpl AlarmTemplate) *Notification {
	local := now
	if tpl.Location != nil {
		local = now.In(tpl.Location)
	}

	return &Notification{
		AppID:            tpl.AppID,
		IncludeAliases:   Aliases{ExternalID: []string{userID}},
		TargetChannel:    targetChannelPush,
		Headings:         LocalizedText{EN: alarmHeadingTitle + local.Format(timeOfDayLayout)},
		Contents:         LocalizedText{EN: tpl.Message},
		AndroidGroup:     GroupToken(now),
		Priority:         tpl.Priority,
		AndroidChannelID: tpl.AndroidChannelID,
		AndroidSound:     tpl.Sound,
	}
}

// GroupToken returns the grouping token for an alarm raised at t.
func GroupToken(t time.Time) string {
	return alarmGroupPrefix + strconv.FormatInt(t.UnixMilli(), 10)
}
