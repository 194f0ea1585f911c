package layout

// FoodCardFrames are the regions of a food card relative to the card
type FoodCardFrames struct {
	Body        Rect
	Image       Rect
	Name        Rect
	Description Rect
	Price       Rect
	Add         Rect
}

// ComputeFoodCardFrames lays out a FoodCardWidth x FoodCardHeight card. The
// rounded body fills the lower 70% and the image overlaps its top.
func ComputeFoodCardFrames() FoodCardFrames {
	inner := FoodCardWidth - 2*FoodCardPadding
	innerH := FoodCardHeight - 2*FoodCardPadding
	bodyH := innerH * FoodCardBodyRatio
	bodyY := FoodCardPadding + innerH - bodyH

	textTop := bodyY + bodyH*0.43
	rowY := textTop + 2*InfoLabelHeight + 5
	bottom := FoodCardHeight - FoodCardPadding

	return FoodCardFrames{
		Body:        Rect{X: FoodCardPadding, Y: bodyY, W: inner, H: bodyH},
		Image:       Rect{X: FoodCardPadding, Y: FoodCardPadding, W: inner, H: innerH * FoodCardImageRatio},
		Name:        Rect{X: FoodCardPadding, Y: textTop, W: inner, H: InfoLabelHeight},
		Description: Rect{X: FoodCardPadding, Y: textTop + InfoLabelHeight + 5, W: inner, H: InfoLabelHeight},
		Price:       Rect{X: FoodCardPadding + 14, Y: rowY, W: inner/2 - 14, H: bottom - rowY},
		Add: Rect{
			X: FoodCardPadding + inner - 14 - FoodAddButtonWidth,
			Y: rowY + 5,
			W: FoodAddButtonWidth,
			H: bottom - rowY - 5,
		},
	}
}

// RecipeRowFrames are the regions of a recipe row relative to the row
type RecipeRowFrames struct {
	Row        Rect
	Image      Rect
	Name       Rect
	Category   Rect
	Badge      Rect
	Experience Rect
	Chevron    Rect
}

// ComputeRecipeRowFrames lays out a recipe row of the given width. Columns
// split 30/60/10 between image well, text and chevron.
func ComputeRecipeRowFrames(width float32) RecipeRowFrames {
	rowH := RecipeRowHeight - RecipeRowGap
	well := width * 0.3
	if well > rowH {
		well = rowH
	}
	textX := width*0.3 + SectionPadding
	textW := width*0.6 - 2*SectionPadding
	lineH := (rowH - 2*SectionPadding) / 3

	return RecipeRowFrames{
		Row:      Rect{W: width, H: rowH},
		Image:    Rect{W: well, H: well},
		Name:     Rect{X: textX, Y: SectionPadding, W: textW, H: lineH},
		Category: Rect{X: textX, Y: SectionPadding + lineH, W: textW, H: lineH},
		Badge: Rect{
			X: textX,
			Y: SectionPadding + 2*lineH + (lineH-RecipeBadgeSize)/2,
			W: RecipeBadgeSize,
			H: RecipeBadgeSize,
		},
		Experience: Rect{X: textX + RecipeBadgeSize + 8, Y: SectionPadding + 2*lineH, W: textW - RecipeBadgeSize - 8, H: lineH},
		Chevron:    Rect{X: width * 0.9, Y: SectionPadding, W: RecipeChevronWidth, H: RecipeChevronWidth},
	}
}
