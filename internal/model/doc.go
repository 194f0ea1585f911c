package model

// Package model defines the display records rendered by the recipe screen:
// foods, recipes, the recipe detail shown in the header, and the serving
// counter. All records except ServingCount are immutable once built.
