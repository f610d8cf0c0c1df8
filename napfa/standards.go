// napfa/standards.go - NAPFA grading standards (ages 12-16)
package napfa

import "fmt"

// Event identifies one of the six NAPFA test stations.
type Event string

const (
	SitUps       Event = "SU"  // sit-ups in 1 minute
	BroadJump    Event = "SBJ" // standing broad jump, cm
	SitAndReach  Event = "SAR" // sit and reach, cm
	PullUps      Event = "PU"  // pull-ups in 30 seconds
	ShuttleRun   Event = "SR"  // 4x10m shuttle run, seconds
	Run          Event = "RUN" // 2.4km run, decimal minutes
)

// Events lists all six stations in display order.
var Events = []Event{SitUps, BroadJump, SitAndReach, PullUps, ShuttleRun, Run}

// EventNames maps event codes to their full display names.
var EventNames = map[Event]string{
	SitUps:      "Sit-Ups",
	BroadJump:   "Standing Broad Jump",
	SitAndReach: "Sit and Reach",
	PullUps:     "Pull-Ups",
	ShuttleRun:  "Shuttle Run",
	Run:         "2.4km Run",
}

// Standard holds the five cutoffs for one event, ordered grade 5 down to
// grade 1. LowerIsBetter marks timed events where a smaller score is better.
type Standard struct {
	Cutoffs       [5]float64
	LowerIsBetter bool
}

const (
	MinAge = 12
	MaxAge = 16
)

// ErrUnsupportedAge is returned when no standards row exists for an age.
var ErrUnsupportedAge = fmt.Errorf("napfa: age must be between %d and %d", MinAge, MaxAge)

var standards = map[int]map[string]map[Event]Standard{
	12: {
		"m": {
			SitUps:      {Cutoffs: [5]float64{36, 32, 28, 24, 20}},
			BroadJump:   {Cutoffs: [5]float64{198, 190, 182, 174, 166}},
			SitAndReach: {Cutoffs: [5]float64{39, 37, 34, 30, 25}},
			PullUps:     {Cutoffs: [5]float64{6, 5, 4, 3, 2}},
			ShuttleRun:  {Cutoffs: [5]float64{10.8, 11.2, 11.6, 12.1, 12.6}, LowerIsBetter: true},
			Run:         {Cutoffs: [5]float64{9.67, 10.42, 11.17, 12.0, 12.75}, LowerIsBetter: true},
		},
		"f": {
			SitUps:      {Cutoffs: [5]float64{29, 25, 21, 17, 13}},
			BroadJump:   {Cutoffs: [5]float64{167, 159, 150, 141, 132}},
			SitAndReach: {Cutoffs: [5]float64{39, 37, 34, 30, 25}},
			PullUps:     {Cutoffs: [5]float64{15, 13, 10, 7, 3}},
			ShuttleRun:  {Cutoffs: [5]float64{11.5, 11.9, 12.4, 12.9, 13.5}, LowerIsBetter: true},
			Run:         {Cutoffs: [5]float64{11.0, 11.75, 12.67, 13.42, 14.42}, LowerIsBetter: true},
		},
	},
	13: {
		"m": {
			SitUps:      {Cutoffs: [5]float64{38, 34, 30, 26, 22}},
			BroadJump:   {Cutoffs: [5]float64{208, 200, 192, 184, 176}},
			SitAndReach: {Cutoffs: [5]float64{40, 38, 35, 31, 26}},
			PullUps:     {Cutoffs: [5]float64{8, 7, 6, 5, 4}},
			ShuttleRun:  {Cutoffs: [5]float64{10.5, 10.9, 11.3, 11.8, 12.3}, LowerIsBetter: true},
			Run:         {Cutoffs: [5]float64{9.33, 10.08, 10.83, 11.67, 12.42}, LowerIsBetter: true},
		},
		"f": {
			SitUps:      {Cutoffs: [5]float64{31, 27, 23, 19, 15}},
			BroadJump:   {Cutoffs: [5]float64{172, 164, 155, 146, 137}},
			SitAndReach: {Cutoffs: [5]float64{40, 38, 35, 31, 26}},
			PullUps:     {Cutoffs: [5]float64{16, 14, 11, 8, 4}},
			ShuttleRun:  {Cutoffs: [5]float64{11.3, 11.7, 12.2, 12.7, 13.3}, LowerIsBetter: true},
			Run:         {Cutoffs: [5]float64{10.75, 11.5, 12.42, 13.17, 14.17}, LowerIsBetter: true},
		},
	},
	14: {
		"m": {
			SitUps:      {Cutoffs: [5]float64{40, 36, 32, 28, 24}},
			BroadJump:   {Cutoffs: [5]float64{218, 210, 202, 194, 186}},
			SitAndReach: {Cutoffs: [5]float64{41, 39, 36, 32, 27}},
			PullUps:     {Cutoffs: [5]float64{10, 9, 8, 7, 6}},
			ShuttleRun:  {Cutoffs: [5]float64{10.2, 10.6, 11.0, 11.5, 12.0}, LowerIsBetter: true},
			Run:         {Cutoffs: [5]float64{9.0, 9.75, 10.5, 11.33, 12.08}, LowerIsBetter: true},
		},
		"f": {
			SitUps:      {Cutoffs: [5]float64{33, 29, 25, 21, 17}},
			BroadJump:   {Cutoffs: [5]float64{176, 168, 159, 150, 141}},
			SitAndReach: {Cutoffs: [5]float64{41, 39, 36, 32, 27}},
			PullUps:     {Cutoffs: [5]float64{17, 15, 12, 9, 5}},
			ShuttleRun:  {Cutoffs: [5]float64{11.1, 11.5, 12.0, 12.5, 13.1}, LowerIsBetter: true},
			Run:         {Cutoffs: [5]float64{10.5, 11.25, 12.17, 12.92, 13.92}, LowerIsBetter: true},
		},
	},
	15: {
		"m": {
			SitUps:      {Cutoffs: [5]float64{42, 38, 34, 30, 26}},
			BroadJump:   {Cutoffs: [5]float64{228, 220, 212, 204, 196}},
			SitAndReach: {Cutoffs: [5]float64{42, 40, 37, 33, 28}},
			PullUps:     {Cutoffs: [5]float64{12, 11, 10, 9, 8}},
			ShuttleRun:  {Cutoffs: [5]float64{9.9, 10.3, 10.7, 11.2, 11.7}, LowerIsBetter: true},
			Run:         {Cutoffs: [5]float64{8.67, 9.42, 10.17, 11.0, 11.75}, LowerIsBetter: true},
		},
		"f": {
			SitUps:      {Cutoffs: [5]float64{35, 31, 27, 23, 19}},
			BroadJump:   {Cutoffs: [5]float64{180, 172, 163, 154, 145}},
			SitAndReach: {Cutoffs: [5]float64{42, 40, 37, 33, 28}},
			PullUps:     {Cutoffs: [5]float64{18, 16, 13, 10, 6}},
			ShuttleRun:  {Cutoffs: [5]float64{10.9, 11.3, 11.8, 12.3, 12.9}, LowerIsBetter: true},
			Run:         {Cutoffs: [5]float64{10.25, 11.0, 11.92, 12.67, 13.67}, LowerIsBetter: true},
		},
	},
	16: {
		"m": {
			SitUps:      {Cutoffs: [5]float64{44, 40, 36, 32, 28}},
			BroadJump:   {Cutoffs: [5]float64{238, 230, 222, 214, 206}},
			SitAndReach: {Cutoffs: [5]float64{43, 41, 38, 34, 29}},
			PullUps:     {Cutoffs: [5]float64{14, 13, 12, 11, 10}},
			ShuttleRun:  {Cutoffs: [5]float64{9.6, 10.0, 10.4, 10.9, 11.4}, LowerIsBetter: true},
			Run:         {Cutoffs: [5]float64{8.33, 9.08, 9.83, 10.67, 11.42}, LowerIsBetter: true},
		},
		"f": {
			SitUps:      {Cutoffs: [5]float64{37, 33, 29, 25, 21}},
			BroadJump:   {Cutoffs: [5]float64{184, 176, 167, 158, 149}},
			SitAndReach: {Cutoffs: [5]float64{43, 41, 38, 34, 29}},
			PullUps:     {Cutoffs: [5]float64{19, 17, 14, 11, 7}},
			ShuttleRun:  {Cutoffs: [5]float64{10.7, 11.1, 11.6, 12.1, 12.7}, LowerIsBetter: true},
			Run:         {Cutoffs: [5]float64{10.0, 10.75, 11.67, 12.42, 13.42}, LowerIsBetter: true},
		},
	},
}

// StandardsFor returns the cutoff table for an age and gender ("m" or "f").
func StandardsFor(age int, gender string) (map[Event]Standard, error) {
	byGender, ok := standards[age]
	if !ok {
		return nil, ErrUnsupportedAge
	}
	table, ok := byGender[gender]
	if !ok {
		return nil, fmt.Errorf("napfa: unknown gender %q", gender)
	}
	return table, nil
}
