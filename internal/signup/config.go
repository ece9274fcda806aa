package signup

// Config is read from the environment with pkg/config.
type Config struct {
	Env       string `env:"APP_ENV" envDefault:"development"`
	LogFormat string `env:"LOG_FORMAT"`

	// PrefillEmail seeds the email field. With PrefillTouched the field starts
	// dirty so its validation error shows immediately.
	PrefillEmail   string `env:"SIGNUP_PREFILL_EMAIL"`
	PrefillTouched bool   `env:"SIGNUP_PREFILL_TOUCHED" envDefault:"false"`

	MinPasswordLength int `env:"SIGNUP_MIN_PASSWORD_LENGTH" envDefault:"8"`
	// BcryptCost is the cost used to hash the password before it is sent.
	// Zero means bcrypt.DefaultCost.
	BcryptCost int `env:"SIGNUP_BCRYPT_COST" envDefault:"10"`
}
