package event

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Message is free-form narration ("You attack the cow.").
type Message struct {
	Text string
}

func (e Message) Line() string { return e.Text }

// Messagef builds a Message.
func Messagef(format string, args ...any) Message {
	return Message{Text: fmt.Sprintf(format, args...)}
}

// PhaseChanged fires when the clock crosses into a new part of the day.
type PhaseChanged struct {
	Minutes int
	Night   bool
	Text    string
}

func (e PhaseChanged) Line() string { return e.Text }

// Damaged reports damage taken by the player.
type Damaged struct {
	Amount int
	Health int
	Max    int
	Cause  string
}

func (e Damaged) Line() string {
	return fmt.Sprintf("You take %d damage! HP: %d/%d", e.Amount, e.Health, e.Max)
}

// Healed reports health regained.
type Healed struct {
	Amount int
	Health int
	Max    int
}

func (e Healed) Line() string {
	return fmt.Sprintf("You are healed by %d HP. HP: %d/%d", e.Amount, e.Health, e.Max)
}

// HungerChanged is the hunger reading emitted after an exhaustion flush or a meal.
type HungerChanged struct {
	Hunger     int
	Max        int
	Saturation int
}

func (e HungerChanged) Line() string {
	return fmt.Sprintf("Hunger: %d/%d", e.Hunger, e.Max)
}

// LootReceived reports items added to the inventory.
type LootReceived struct {
	Item  string
	Count int
}

func (e LootReceived) Line() string {
	return fmt.Sprintf("You got %dx %s", e.Count, e.Item)
}

// ExperienceGained reports experience credited by a drop.
type ExperienceGained struct {
	Amount int
	Total  int
}

func (e ExperienceGained) Line() string {
	return fmt.Sprintf("You gained %d experience.", e.Amount)
}

// ToolBroke fires when a tool's durability drops below zero.
type ToolBroke struct {
	Tool string
}

func (e ToolBroke) Line() string {
	return fmt.Sprintf("Your %s broke!", e.Tool)
}

// EncounterEnded closes an encounter; Outcome is the outcome's name.
type EncounterEnded struct {
	Creature string
	Outcome  string
	Rounds   int
}

func (e EncounterEnded) Line() string {
	return ""
}

// Died is the terminal notification.
type Died struct {
	Cause string
	Score int
}

func (e Died) Line() string {
	if e.Cause == "" {
		return printer.Sprintf("You died! Score: %d", e.Score)
	}
	return printer.Sprintf("You died! %s Score: %d", e.Cause, e.Score)
}
