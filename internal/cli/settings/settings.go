package settings

import (
	"fmt"

	"github.com/julianstephens/wellhub/internal/cli"
	"github.com/julianstephens/wellhub/internal/models"
	"github.com/julianstephens/wellhub/internal/notifier"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	Theme       *string  `help:"Color theme (default, dark, calm, energetic)."`
	Reminders   *bool    `help:"Enable or disable wellness reminders."`
	Sounds      *bool    `help:"Enable or disable notification sounds."`
	CalorieGoal *int     `help:"Daily calorie goal (kcal)."`
	WaterGoal   *int     `help:"Daily water goal (cups)."`
	Weight      *float64 `help:"Body weight in kg, used for calorie and BMI estimates. 0 clears it."`
	Height      *float64 `help:"Height in cm, used for BMI. 0 clears it."`
	Timezone    *string  `help:"IANA timezone used to decide what 'today' is."`
	Name        *string  `help:"Profile name."`
	Email       *string  `help:"Profile email."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	hub := ctx.Records()
	prefs, err := hub.Settings.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	profile, err := hub.Settings.Profile()
	if err != nil {
		return fmt.Errorf("failed to get profile: %w", err)
	}

	if c.List {
		c.print(ctx, prefs, profile)
		return nil
	}

	prefsChanged := c.applyPreferences(&prefs)
	profileChanged := c.applyProfile(&profile)
	if !prefsChanged && !profileChanged {
		ctx.Println("No changes specified. Use --list to view settings or flags to update them.")
		return nil
	}

	if prefsChanged {
		if err := hub.Settings.Save(prefs); err != nil {
			return ctx.Reject("failed to save settings", err)
		}
	}
	if profileChanged {
		if err := hub.Settings.SaveProfile(profile); err != nil {
			return ctx.Reject("failed to save profile", err)
		}
	}
	ctx.Notify(notifier.Success("Settings saved successfully!"))
	return nil
}

func (c *SettingsCmd) applyPreferences(p *models.Preferences) bool {
	updated := false
	if c.Theme != nil {
		p.Theme = *c.Theme
		updated = true
	}
	if c.Reminders != nil {
		p.RemindersEnabled = *c.Reminders
		updated = true
	}
	if c.Sounds != nil {
		p.SoundsEnabled = *c.Sounds
		updated = true
	}
	if c.CalorieGoal != nil {
		p.CalorieGoal = *c.CalorieGoal
		updated = true
	}
	if c.WaterGoal != nil {
		p.WaterGoal = *c.WaterGoal
		updated = true
	}
	if c.Weight != nil {
		p.UserWeight = *c.Weight
		updated = true
	}
	if c.Height != nil {
		p.UserHeight = *c.Height
		updated = true
	}
	if c.Timezone != nil {
		p.Timezone = *c.Timezone
		updated = true
	}
	return updated
}

func (c *SettingsCmd) applyProfile(p *models.Profile) bool {
	updated := false
	if c.Name != nil {
		p.Name = *c.Name
		updated = true
	}
	if c.Email != nil {
		p.Email = *c.Email
		updated = true
	}
	return updated
}

func (c *SettingsCmd) print(ctx *cli.Context, p models.Preferences, profile models.Profile) {
	theme := ctx.Theme()
	optional := func(v float64, unit string) string {
		if v <= 0 {
			return "not set"
		}
		return fmt.Sprintf("%.1f %s", v, unit)
	}

	ctx.Println(theme.Heading("Current Settings"))
	ctx.Println(theme.Table([]string{"Setting", "Value"}, [][]string{
		{"Theme", p.Theme},
		{"Reminders", onOff(p.RemindersEnabled)},
		{"Sounds", onOff(p.SoundsEnabled)},
		{"Calorie goal", fmt.Sprintf("%d kcal", p.CalorieGoal)},
		{"Water goal", fmt.Sprintf("%d cups", p.WaterGoal)},
		{"Weight", optional(p.UserWeight, "kg")},
		{"Height", optional(p.UserHeight, "cm")},
		{"Timezone", p.Timezone},
	}))

	if profile.Name != "" || profile.Email != "" {
		ctx.Println()
		ctx.Println(theme.Heading("Profile"))
		ctx.Printf("  Name:  %s\n", profile.Name)
		ctx.Printf("  Email: %s\n", profile.Email)
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
