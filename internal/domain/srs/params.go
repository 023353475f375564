package srs

// Params defines all configurable parameters for the scheduler
type Params struct {
	// Core limits
	InitialEase float64
	MinEase     float64

	// Ease adjustments per grade. Fail and Hard are subtracted, Easy is added.
	FailEasePenalty float64
	HardEasePenalty float64
	EasyEaseBonus   float64

	// Interval handling
	FailInterval           int
	HardIntervalMultiplier float64

	// MaxInterval caps every interval, in days. It keeps the due time inside
	// time.Duration and the interval inside a 32-bit column.
	MaxInterval int

	// Stage thresholds
	MasteryStreak   int
	MasteryInterval int
	DemotionEase    float64
}

// ParamsConfig allows overriding the default parameters when creating a new Params instance.
// Zero values keep the default.
type ParamsConfig struct {
	InitialEase float64 `mapstructure:"initial_ease" validate:"omitempty,gte=1"`
	MinEase     float64 `mapstructure:"min_ease" validate:"omitempty,gte=1"`

	FailEasePenalty float64 `mapstructure:"fail_ease_penalty" validate:"omitempty,gt=0"`
	HardEasePenalty float64 `mapstructure:"hard_ease_penalty" validate:"omitempty,gt=0"`
	EasyEaseBonus   float64 `mapstructure:"easy_ease_bonus" validate:"omitempty,gt=0"`

	FailInterval           int     `mapstructure:"fail_interval" validate:"omitempty,gte=1"`
	HardIntervalMultiplier float64 `mapstructure:"hard_interval_multiplier" validate:"omitempty,gte=1"`
	MaxInterval            int     `mapstructure:"max_interval" validate:"omitempty,gte=1,lte=100000"`

	MasteryStreak   int     `mapstructure:"mastery_streak" validate:"omitempty,gte=1"`
	MasteryInterval int     `mapstructure:"mastery_interval" validate:"omitempty,gte=1"`
	DemotionEase    float64 `mapstructure:"demotion_ease" validate:"omitempty,gte=1"`
}

// DefaultMaxInterval is the default interval ceiling: one hundred years.
const DefaultMaxInterval = 36500

// NewDefaultParams creates a new Params instance with default values
func NewDefaultParams() *Params {
	return &Params{
		InitialEase: DefaultEase,
		MinEase:     1.3,

		FailEasePenalty: 0.2,
		HardEasePenalty: 0.05,
		EasyEaseBonus:   0.15,

		FailInterval:           1,
		HardIntervalMultiplier: 1.2,
		MaxInterval:            DefaultMaxInterval,

		MasteryStreak:   3,
		MasteryInterval: 30,
		DemotionEase:    1.6,
	}
}

// NewParams creates a new Params instance with custom configuration
func NewParams(config ParamsConfig) *Params {
	params := NewDefaultParams()

	if config.InitialEase > 0 {
		params.InitialEase = config.InitialEase
	}
	if config.MinEase > 0 {
		params.MinEase = config.MinEase
	}

	if config.FailEasePenalty > 0 {
		params.FailEasePenalty = config.FailEasePenalty
	}
	if config.HardEasePenalty > 0 {
		params.HardEasePenalty = config.HardEasePenalty
	}
	if config.EasyEaseBonus > 0 {
		params.EasyEaseBonus = config.EasyEaseBonus
	}

	if config.FailInterval > 0 {
		params.FailInterval = config.FailInterval
	}
	if config.HardIntervalMultiplier > 0 {
		params.HardIntervalMultiplier = config.HardIntervalMultiplier
	}

	if config.MaxInterval > 0 {
		params.MaxInterval = config.MaxInterval
	}

	if config.MasteryStreak > 0 {
		params.MasteryStreak = config.MasteryStreak
	}
	if config.MasteryInterval > 0 {
		params.MasteryInterval = config.MasteryInterval
	}
	if config.DemotionEase > 0 {
		params.DemotionEase = config.DemotionEase
	}

	return params
}
