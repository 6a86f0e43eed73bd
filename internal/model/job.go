package model

// Job is an ordered collection of VMs, identified by JobID. Jobs are
// otherwise independent of one another; anti-colocation only applies
// within a single job.
type Job struct {
	ID  string
	VMs []VirtualMachine
}

// AntiColocatedGroup returns the VM keys within j that carry the
// anti-colocation flag. A group of size ≤ 1 imposes no constraint.
func (j Job) AntiColocatedGroup() []VMKey {
	var keys []VMKey
	for _, vm := range j.VMs {
		if vm.AntiColocate {
			keys = append(keys, vm.Key)
		}
	}
	return keys
}
