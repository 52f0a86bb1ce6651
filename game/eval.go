package game

import (
	"fmt"

	"chainreaction/utils"
)

const (
	WinScore  = 100
	LossScore = -100
	DrawScore = 0
)

// EvaluateMass scores the share of all pieces on the board owned by player:
// 100 if player owns every piece, -100 if none, 0 on an empty board,
// otherwise the floored percentage of pieces player owns.
func EvaluateMass(b *Board, player Player) int {
	total, owned := 0, 0
	for _, cell := range b.cells {
		if cell == 0 {
			continue
		}
		mass := utils.Abs(cell)
		total += mass
		if utils.Sign(cell) == int(player) {
			owned += mass
		}
	}
	return percentage(owned, total)
}

// EvaluateCells is EvaluateMass counting occupied cells instead of pieces.
func EvaluateCells(b *Board, player Player) int {
	total, owned := 0, 0
	for _, cell := range b.cells {
		if cell == 0 {
			continue
		}
		total++
		if utils.Sign(cell) == int(player) {
			owned++
		}
	}
	return percentage(owned, total)
}

func percentage(owned, total int) int {
	if total == 0 {
		return DrawScore
	}
	if owned == total {
		return WinScore
	}
	if owned == 0 {
		return LossScore
	}
	return owned * 100 / total
}

// EvaluatorByName maps a configuration name to an evaluation function.
func EvaluatorByName(name string) (Evaluate, error) {
	switch name {
	case "", "mass":
		return EvaluateMass, nil
	case "cells":
		return EvaluateCells, nil
	}
	return nil, fmt.Errorf("unknown evaluator %q", name)
}
