package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/classroom-sim/classroom-sim/classifier"
	"github.com/classroom-sim/classroom-sim/sim/trace"
)

// Controller samples the environment every monitoring tick, consults the
// classifier, and on a non-conducive verdict fires the first matching rule
// of a fixed-priority table. Rules only ever set actuators; the off
// transition is governed by the configured release policy and happens only
// on conducive ticks.
type Controller struct {
	clf        classifier.Classifier
	thresholds Thresholds
	actuators  ActuatorConfig
	policy     FailurePolicy
	failures   int
}

// NewController builds a controller over the given classifier and
// configuration.
func NewController(clf classifier.Classifier, cfg *Config) *Controller {
	return &Controller{
		clf:        clf,
		thresholds: cfg.Thresholds,
		actuators:  cfg.Actuators,
		policy:     cfg.ClassifierFailurePolicy,
	}
}

// ClassifierFailures returns how many classifier invocations failed so far.
func (ctl *Controller) ClassifierFailures() int {
	return ctl.failures
}

// Evaluate classifies the environment snapshot and applies at most one
// intervention rule, mutating act in place. It produces exactly one record
// per invocation. A classifier error is resolved by the failure policy:
// fail-open logs the failure and records a no-action tick, fail-closed
// returns the error so the run halts. A fail-open tick is not a conducive
// verdict: it never releases actuators under the auto policy, which needs a
// real verdict to act on.
func (ctl *Controller) Evaluate(now int64, env EnvironmentState, act *ActuatorState) (trace.InterventionRecord, error) {
	rec := trace.InterventionRecord{Clock: now, CO2: env.CO2PPM, Temperature: env.TemperatureC}

	verdict, err := ctl.clf.Predict(classifier.Features{
		CO2:         env.CO2PPM,
		Temperature: env.TemperatureC,
		Noise:       env.NoiseDB,
		Light:       env.LightLux,
	})
	if err != nil {
		ctl.failures++
		if ctl.policy == FailClosed {
			return rec, fmt.Errorf("classifier verdict at %dmin: %w", now, err)
		}
		logrus.Warnf("[%03dmin] classifier failure, treating tick as conducive: %v", now, err)
		return rec, nil
	}

	if verdict.Conducive {
		ctl.maybeRelease(now, env, act)
		return rec, nil
	}

	// First matching rule fires; priority is strictly positional.
	switch {
	case env.CO2PPM > ctl.thresholds.CO2Max:
		rec.Action = trace.ActionActivateVentilation
		act.FanOn = true
		logrus.Infof("[%03dmin] CO2 high (%.0fppm) - fan ON", now, env.CO2PPM)
	case env.TemperatureC > ctl.thresholds.TempMax:
		rec.Action = trace.ActionActivateAC
		act.ACOn = true
		logrus.Infof("[%03dmin] temperature high (%.1fC) - AC ON", now, env.TemperatureC)
	case env.NoiseDB > ctl.thresholds.NoiseMax:
		rec.Action = trace.ActionSendAlert
		logrus.Infof("[%03dmin] noise high (%.0fdB) - alert sent", now, env.NoiseDB)
	default:
		// Non-conducive but no rule explains why, e.g. temperature below
		// temp_min or light below light_min. Recorded, never dropped.
		rec.Action = trace.ActionUnclassified
		logrus.Infof("[%03dmin] non-conducive verdict (confidence %.2f) with no matching rule", now, verdict.Confidence)
	}
	return rec, nil
}

// maybeRelease turns actuators back off under the auto release policy, with
// hysteresis margins below the firing thresholds. Under latch it is a no-op.
func (ctl *Controller) maybeRelease(now int64, env EnvironmentState, act *ActuatorState) {
	if ctl.actuators.ReleasePolicy != ReleaseAuto {
		return
	}
	if act.FanOn && env.CO2PPM < ctl.thresholds.CO2Max-ctl.actuators.CO2ReleaseMargin {
		act.FanOn = false
		logrus.Infof("[%03dmin] CO2 recovered (%.0fppm) - fan OFF", now, env.CO2PPM)
	}
	if act.ACOn && env.TemperatureC < ctl.thresholds.TempMax-ctl.actuators.TempReleaseMargin {
		act.ACOn = false
		logrus.Infof("[%03dmin] temperature recovered (%.1fC) - AC OFF", now, env.TemperatureC)
	}
}
