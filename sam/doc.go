// Package sam represents the SAM header and alignment metadata that
// platform resolution depends on: @RG records with their PL entries,
// the RG tag of an alignment, and the strand flag.
//
// Header implements genotyper.ReadGroupDictionary, and *Alignment
// implements genotyper.Read, so alignments can be fed directly to a
// genotyper.MiscallEngine constructed over their header.
package sam
