package domain

// ResolveChart derives step, axis and span gap for a resolution. Every chart
// on a page shares the result so their axes line up.
func ResolveChart(res Resolution) ChartProps {
	step, label := StepDay, StepDay

	if res.Kind == KindPastNUnits {
		switch res.Days {
		case 1:
			step, label = StepHour, StepHour
		case 7, 14:
			step, label = StepHour, StepDay
		}
	}

	return ChartProps{
		Step: step,
		Axis: Axis{
			Unit: label,
			Min:  res.Range.Start,
			Max:  res.Range.End,
		},
		SpanGap: step.Duration(),
	}
}
