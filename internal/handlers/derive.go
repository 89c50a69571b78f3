package handlers

import (
	"crypto/sha1"
	"encoding/hex"
	"strings"
)

// sanitizeProject turns a branch name into a value usable as an OpenShift
// project name.
func sanitizeProject(branch string) string {
	return strings.ReplaceAll(branch, "/", "-")
}

func portaImage(project string) string {
	return "quay.io/3scale/porta:porta-" + project
}

func clusterEndpoint(domain string) string {
	return "https://api." + domain + ":6443"
}

// wildcardDomain builds the routing wildcard for a project: the first 7 hex
// characters of the project name's SHA-1, under apps.<cluster domain>.
func wildcardDomain(project, domain string) string {
	sum := sha1.Sum([]byte(project))
	return hex.EncodeToString(sum[:])[:7] + ".apps." + domain
}
