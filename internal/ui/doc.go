package ui

// Package ui contains the Fyne-based recipe screen. It wires the scroll
// position of the content list to the parallax header, renders the static
// recipe sections and forwards taps to an action.Dispatcher.
