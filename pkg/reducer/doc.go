/*
The reducer prepares a reaction network for the mass-balance check. It partitions all species into SOMs and
simplifies the many-to-many reactions against that partition, so only the terms which are not known to cancel
out are left for the check.
*/
package reducer
