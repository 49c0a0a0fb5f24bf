package wizard

// CanAdvance reports whether forward navigation is allowed from the current
// step. Advancing from StepMedia means starting a generation, so the gate
// is closed while one is already running. StepOutput is terminal.
func CanAdvance(s *Session) bool {
	if s.IsGenerating {
		return false
	}
	switch s.Step {
	case StepBrand:
		return nonEmpty(s.Brand.Name) &&
			nonEmpty(s.Brand.Description) &&
			len(s.Brand.RequiredHashtags) > 0
	case StepCampaign:
		return nonEmpty(s.Campaign.Goal) && nonEmpty(s.Campaign.Theme)
	case StepMedia:
		return s.Ready()
	default:
		return false
	}
}

// CanGoBack reports whether backward navigation is allowed. Going back is
// always possible above step 1 and never discards entered data.
func CanGoBack(s *Session) bool {
	return s.Step > StepBrand && !s.IsGenerating
}

// CanJumpTo reports whether a direct jump to step target is allowed.
// Only already-visited steps are reachable; skipping forward past an
// unvalidated step is not.
func CanJumpTo(s *Session, target Step) bool {
	return target >= StepBrand && target < s.Step && !s.IsGenerating
}
