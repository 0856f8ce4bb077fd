package logger

import (
	"os"
	"strconv"
	"strings"
)

// Environment variables set by common MPI launchers, in lookup order.
var (
	rankEnvVars = []string{
		"OMPI_COMM_WORLD_RANK",
		"PMIX_RANK",
		"PMI_RANK",
		"MV2_COMM_WORLD_RANK",
		"SLURM_PROCID",
	}
	sizeEnvVars = []string{
		"OMPI_COMM_WORLD_SIZE",
		"PMI_SIZE",
		"MV2_COMM_WORLD_SIZE",
		"SLURM_NTASKS",
	}
)

// DetectRank returns the rank of this process as published by the MPI
// launcher, or 0 when no launcher variable is set. A variable that is set
// but not a non-negative integer is a configuration error.
func DetectRank() (int, error) {
	return lookupIntEnv("rank", rankEnvVars)
}

// DetectSize returns the number of processes in the job as published by
// the MPI launcher, or 0 when unknown.
func DetectSize() (int, error) {
	return lookupIntEnv("size", sizeEnvVars)
}

func lookupIntEnv(field string, names []string) (int, error) {
	for _, name := range names {
		v, ok := os.LookupEnv(name)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil || n < 0 {
			return 0, &ConfigError{
				Field:  field,
				Value:  v,
				Reason: "environment variable " + name + " is not a non-negative integer",
			}
		}
		return n, nil
	}
	return 0, nil
}
