package sparsehist

var VERSION_STRING = "0.1.0"

func GetVersionInfo() map[string]interface{} {
	versionInfo := make(map[string]interface{})

	versionInfo["version"] = VERSION_STRING
	versionInfo["hdr_hist"] = ENABLE_HDR
	versionInfo["tdigest_hist"] = ENABLE_TDIGEST
	versionInfo["profiler"] = PROFILER_ENABLED

	return versionInfo

}
