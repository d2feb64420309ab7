package decoder

// zeroRegClass picks Xzr/Wzr from an sf bit, for register slots the
// decoder has determined mean "the zero register" rather than a real GPR.
func zeroRegClass(sf uint32) RegClass {
	if sf == 1 {
		return Xzr
	}
	return Wzr
}

// spOrGpr picks Sp for encoding 31 in a slot where 31 means the stack
// pointer, and otherwise the ordinary GPR class for sf (GpX or GpW).
func spOrGpr(reg uint32, sf uint32) RegClass {
	if reg == 31 {
		return Sp
	}
	return gprClass(sf)
}
