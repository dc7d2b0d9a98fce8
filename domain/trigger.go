package domain

import "time"

// Marketing trigger channels.
const (
	ChannelPush = "Push"
	ChannelSMS  = "SMS"
)

// MarketingTrigger is a configured campaign rule plus message template.
// The metric fields are display values owned by the server: they are zeroed
// at creation and never accepted from a client. No delivery engine exists
// here, so nothing recomputes them.
type MarketingTrigger struct {
	ID              string    `gorm:"primaryKey"`
	Name            string    `gorm:"column:name;not null"`
	TriggerType     string    `gorm:"column:trigger_type;not null"` // No orders in 30 days, High spender, New user
	Conditions      string    `gorm:"column:conditions;not null"`
	MessageTemplate string    `gorm:"column:message_template;not null"`
	Channel         string    `gorm:"column:channel;not null"` // Push, SMS
	IsActive        bool      `gorm:"column:is_active;not null;default:true"`
	CreatedAt       time.Time `gorm:"column:created_at;not null"`
	SentCount       int       `gorm:"column:sent_count;not null;default:0"`
	OpenRate        float64   `gorm:"column:open_rate;not null;default:0"`
	ClickRate       float64   `gorm:"column:click_rate;not null;default:0"`
	ConversionRate  float64   `gorm:"column:conversion_rate;not null;default:0"`
}

func (MarketingTrigger) TableName() string {
	return "marketing_triggers"
}

// TriggerPatch carries a partial update of the client-settable fields.
type TriggerPatch struct {
	Name            *string
	TriggerType     *string
	Conditions      *string
	MessageTemplate *string
	Channel         *string
	IsActive        *bool
}
