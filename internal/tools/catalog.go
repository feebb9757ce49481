package tools

// Catalog declares the 8 analysis tools in the order they are advertised.
// Definitions are data; all validation happens in the dispatcher.
func Catalog(api Service) []ToolDefinition {
	return []ToolDefinition{
		{
			Name:        "netcores_health_check",
			Description: "Check the netcores analysis service: API reachability, version, and per-IP-version dataset status.",
			Handler:     healthHandler(api),
		},
		{
			Name:        "netcores_data_summary",
			Description: "Summarize the loaded dataset for one IP version: snapshot range, tracked ASNs, and k-core statistics.",
			Args: []ArgSpec{
				ipVersionArg(),
			},
			Handler: summaryHandler(api),
		},
		{
			Name:        "netcores_asn_trend",
			Description: "Show the k-core coreness trend of a single ASN over time.",
			Args: append([]ArgSpec{
				{
					Name:        "asn",
					Type:        ArgInt,
					Description: "Autonomous System number to inspect.",
					Required:    true,
					Min:         floatPtr(1),
				},
				ipVersionArg(),
			}, dateRangeArgs(limitArg(20))...),
			Handler: trendHandler(api),
		},
		{
			Name:        "netcores_compare_asns",
			Description: "Compare k-core trends of several ASNs side by side, in the order given.",
			Args: append([]ArgSpec{
				{
					Name:        "asns",
					Type:        ArgIntList,
					Description: "Autonomous System numbers to compare (2 to 10).",
					Required:    true,
					Min:         floatPtr(1),
					MinItems:    2,
					MaxItems:    10,
				},
				ipVersionArg(),
			}, dateRangeArgs(limitArg(10))...),
			Handler: compareHandler(api),
		},
		{
			Name:        "netcores_list_snapshots",
			Description: "List the dataset snapshots available for one IP version.",
			Args: []ArgSpec{
				ipVersionArg(),
			},
			Handler: snapshotsHandler(api),
		},
		{
			Name:        "netcores_refresh_data",
			Description: "Trigger ingestion of the latest topology data for the given IP versions.",
			Args: []ArgSpec{
				{
					Name:        "ip_versions",
					Type:        ArgIntList,
					Description: "IP versions to refresh (4 and/or 6). Defaults to both.",
					Default:     []int{4, 6},
					EnumInts:    []int{4, 6},
				},
			},
			Handler: refreshHandler(api),
		},
		{
			Name:        "netcores_scheduler_status",
			Description: "Report the recurring update scheduler: enabled state, interval, and last/next runs.",
			Handler:     schedulerStatusHandler(api),
		},
		{
			Name:        "netcores_trigger_update",
			Description: "Manually trigger the recurring update job once.",
			Handler:     triggerUpdateHandler(api),
		},
	}
}

// ipVersionArg is shared by every per-version tool; 4 is the primary version.
func ipVersionArg() ArgSpec {
	return ArgSpec{
		Name:        "ip_version",
		Type:        ArgInt,
		Description: "IP version of the dataset: 4 or 6.",
		Default:     4,
		EnumInts:    []int{4, 6},
	}
}

func limitArg(def int) ArgSpec {
	return ArgSpec{
		Name:        "limit",
		Type:        ArgInt,
		Description: "How many of the most recent data points to display; 0 shows all.",
		Default:     def,
		Min:         floatPtr(0),
	}
}

func dateRangeArgs(extra ...ArgSpec) []ArgSpec {
	args := []ArgSpec{
		{
			Name:        "start_date",
			Type:        ArgString,
			Description: "Earliest snapshot date to include (YYYY-MM-DD).",
		},
		{
			Name:        "end_date",
			Type:        ArgString,
			Description: "Latest snapshot date to include (YYYY-MM-DD).",
		},
	}
	return append(args, extra...)
}
