/*
Package som partitions the species of a reaction network into Sets Of Molecules (SOMs). All members of a SOM
must have the same weight in a stoichiometrically consistent model. Uni-uni reactions merge SOMs, and the
partition is then used to cancel weight-equivalent terms out of many-to-many reactions so a mass-balance
check only sees what is left.

A Partition is an explicit registry. Independent analyses use independent partitions.
*/
package som
