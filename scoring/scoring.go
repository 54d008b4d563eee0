// Package scoring derives the live scoreboard, the per-category pivot tables
// and the tie-aware rankings from raw competition records. Everything here is
// a pure, synchronous transformation over in-memory snapshots: no I/O, no
// state across calls. Callers fetch the records, invoke the functions, and
// serialize the results.
package scoring

import (
	"sort"
	"time"

	"github.com/artsfest/scoreboard/models"
)

// Point values applied when the configuration leaves a field unset.
var (
	defaultFirst  = models.PointPair{Group: 10, Individual: 5}
	defaultSecond = models.PointPair{Group: 5, Individual: 2}
	defaultThird  = models.PointPair{Group: 1, Individual: 1}
)

// EffectiveConfig resolves a possibly incomplete points configuration into
// the one actually used for scoring. Non-positive or missing position values
// fall back to the defaults; the grade list passes through as-is (no grading
// when empty). A malformed configuration is therefore never an error.
func EffectiveConfig(cfg models.PointsConfig) models.PointsConfig {
	cfg.First = fillPair(cfg.First, defaultFirst)
	cfg.Second = fillPair(cfg.Second, defaultSecond)
	cfg.Third = fillPair(cfg.Third, defaultThird)
	return cfg
}

func fillPair(p, def models.PointPair) models.PointPair {
	if p.Group <= 0 {
		p.Group = def.Group
	}
	if p.Individual <= 0 {
		p.Individual = def.Individual
	}
	return p
}

func pairValue(p models.PointPair, t models.ItemType) int {
	if t == models.ItemTypeGroup {
		return p.Group
	}
	return p.Individual
}

func gradeValue(g models.GradeConfig, t models.ItemType) int {
	if t == models.ItemTypeGroup {
		return g.GroupPoints
	}
	return g.IndividualPoints
}

// ComputeScoreboard attaches a score and a full breakdown to every
// participant. Entries keep the input participant order; sorting and ranking
// are the caller's concern (see Rank).
func ComputeScoreboard(participants []models.Participant, items []models.CompetitionItem, cfg models.PointsConfig, now time.Time) models.Scoreboard {
	eff := EffectiveConfig(cfg)

	entries := make([]models.ScoreboardEntry, 0, len(participants))
	for _, p := range participants {
		breakdown := ParticipantBreakdown(p.ID, items, eff)
		entries = append(entries, models.ScoreboardEntry{
			ID:        p.ID,
			Name:      p.Name,
			ShortCode: p.ShortCode,
			Score:     breakdown.Total,
			Breakdown: breakdown,
		})
	}

	return models.Scoreboard{
		Entries:     entries,
		Points:      eff,
		LastUpdated: now,
	}
}

// ParticipantBreakdown walks every item once and accumulates the given
// participant's position and grade points.
//
// Positions are checked in the fixed order First, Second, Third and the first
// match wins for that item, so a participant appearing in two slots of one
// item (inconsistent data) is counted deterministically. Grade entries
// accumulate independently of positions: an item may contribute a placement
// and a grade to the same participant, and every matching entry counts.
// References to unknown grade keys are skipped.
func ParticipantBreakdown(participantID int, items []models.CompetitionItem, cfg models.PointsConfig) models.ScoreBreakdown {
	eff := EffectiveConfig(cfg)

	gradeByKey := make(map[string]models.GradeConfig, len(eff.Grades))
	for _, g := range eff.Grades {
		gradeByKey[g.Key] = g
	}

	var bd models.ScoreBreakdown
	gradeAcc := make(map[string]*models.GradeBreakdown)

	for _, item := range items {
		t := item.Type

		switch {
		case item.Results.First.Matches(participantID):
			addPosition(&bd.First, t, pairValue(eff.First, t), &bd.TotalPositionPoints)
		case item.Results.Second.Matches(participantID):
			addPosition(&bd.Second, t, pairValue(eff.Second, t), &bd.TotalPositionPoints)
		case item.Results.Third.Matches(participantID):
			addPosition(&bd.Third, t, pairValue(eff.Third, t), &bd.TotalPositionPoints)
		}

		for _, entry := range item.Grades {
			if entry.Grade == "" || !entry.Participant.Matches(participantID) {
				continue
			}
			gc, ok := gradeByKey[entry.Grade]
			if !ok {
				continue
			}
			acc, ok := gradeAcc[entry.Grade]
			if !ok {
				acc = &models.GradeBreakdown{Grade: gc.Key, GradeLabel: gc.Label}
				gradeAcc[entry.Grade] = acc
			}
			points := gradeValue(gc, t)
			acc.Count++
			addTypeCount(&acc.ByType, t)
			addTypePoints(&acc.Points, t, points)
			bd.TotalGradePoints += points
		}
	}

	bd.Grades = make([]models.GradeBreakdown, 0, len(gradeAcc))
	for _, acc := range gradeAcc {
		bd.Grades = append(bd.Grades, *acc)
	}
	sort.Slice(bd.Grades, func(i, j int) bool { return bd.Grades[i].Grade < bd.Grades[j].Grade })

	bd.Total = bd.TotalPositionPoints + bd.TotalGradePoints
	return bd
}

func addPosition(pb *models.PositionBreakdown, t models.ItemType, points int, totalPositionPoints *int) {
	pb.Count++
	addTypeCount(&pb.ByType, t)
	addTypePoints(&pb.Points, t, points)
	*totalPositionPoints += points
}

func addTypeCount(c *models.TypeCount, t models.ItemType) {
	if t == models.ItemTypeGroup {
		c.Group++
	} else {
		c.Individual++
	}
}

func addTypePoints(p *models.TypePoints, t models.ItemType, points int) {
	if t == models.ItemTypeGroup {
		p.Group += points
	} else {
		p.Individual += points
	}
	p.Total += points
}
