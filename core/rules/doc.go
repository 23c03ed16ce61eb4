// Package rules implements the five telemetry prediction functions as a
// deterministic rules engine. Every function is pure: fixed thresholds and
// closed-form arithmetic over a FeatureRecord, no state and no I/O. Two rule
// sets exist for status, speed, emergency and weather impact — a "simple"
// variant and a "detailed" one — selected by Config.Mode; they carry
// different thresholds and must not be mixed within a call.
package rules
