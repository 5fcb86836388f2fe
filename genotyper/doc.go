/*
Package genotyper computes how likely it is that a sequencer
miscalled one base as another, given the platform that produced the
read and the strand it aligned to, and combines such probabilities
into diploid genotype likelihoods.

Build a Model once, before any traversal starts, and share it:

	model := genotyper.NewModel()
	engine := genotyper.NewMiscallEngine(model, header, genotyper.DefaultOptions())
	log10p, err := engine.Log10PTrueGivenMiscall(genotyper.A, genotyper.C, read)

The platform of a read is taken from the PL entry of its read group.
With DefaultOptions, reads of unrecognized platform fail with an
UnsupportedPlatformError; AssumePlatform substitutes a platform for
them instead.

The miscall tables hold log10 P(true base | miscalled base) per
platform, in sequencing orientation. Reads on the reverse strand are
complemented before lookup.

ObservationModel is the extension point for likelihood models. An
EmpiricalSubstitutionModel wraps a MiscallEngine; a ThreeStateModel
ignores platforms. DiploidGenotypeLikelihoods accumulates the
contributions at one position, and CallShards drives that over
intervals.LocusShards in parallel.
*/
package genotyper
