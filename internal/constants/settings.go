package constants

const (
	// Key-value settings keys
	SettingOnboardingComplete = "onboarding_complete"
	SettingSetupStep          = "setup_step"
	SettingDisplayName        = "display_name"
	SettingShowSoberCounter   = "show_sober_counter"
	SettingInstallID          = "install_id"

	// Default settings values
	DefaultSetupStep        = 0
	DefaultShowSoberCounter = true
)
