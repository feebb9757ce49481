package tools

import "context"

// Handlers bridge normalized arguments to the remote service and shape the
// typed payloads through the formatters. They never retry; that is the
// transport client's concern.

func healthHandler(api Service) HandlerFunc {
	return func(ctx context.Context, _ Invocation) (string, error) {
		health, err := api.Health(ctx)
		if err != nil {
			return "", err
		}
		return formatHealth(health)
	}
}

func summaryHandler(api Service) HandlerFunc {
	return func(ctx context.Context, inv Invocation) (string, error) {
		ipVersion := intArg(inv.Args, "ip_version")
		summary, err := api.Summary(ctx, ipVersion)
		if err != nil {
			return "", err
		}
		return formatSummary(summary, ipVersion)
	}
}

func trendHandler(api Service) HandlerFunc {
	return func(ctx context.Context, inv Invocation) (string, error) {
		ipVersion := intArg(inv.Args, "ip_version")
		limit := intArg(inv.Args, "limit")
		series, err := api.ASNTrend(ctx,
			intArg(inv.Args, "asn"),
			ipVersion,
			stringArg(inv.Args, "start_date"),
			stringArg(inv.Args, "end_date"))
		if err != nil {
			return "", err
		}
		return formatTrend(series, ipVersion, limit)
	}
}

func compareHandler(api Service) HandlerFunc {
	return func(ctx context.Context, inv Invocation) (string, error) {
		asns := intListArg(inv.Args, "asns")
		ipVersion := intArg(inv.Args, "ip_version")
		limit := intArg(inv.Args, "limit")
		result, err := api.CompareASNs(ctx, asns, ipVersion,
			stringArg(inv.Args, "start_date"),
			stringArg(inv.Args, "end_date"))
		if err != nil {
			return "", err
		}
		return formatCompare(result, asns, ipVersion, limit)
	}
}

func snapshotsHandler(api Service) HandlerFunc {
	return func(ctx context.Context, inv Invocation) (string, error) {
		ipVersion := intArg(inv.Args, "ip_version")
		list, err := api.Snapshots(ctx, ipVersion)
		if err != nil {
			return "", err
		}
		return formatSnapshots(list, ipVersion)
	}
}

func refreshHandler(api Service) HandlerFunc {
	return func(ctx context.Context, inv Invocation) (string, error) {
		result, err := api.Refresh(ctx, intListArg(inv.Args, "ip_versions"))
		if err != nil {
			return "", err
		}
		return formatRefresh(result)
	}
}

func schedulerStatusHandler(api Service) HandlerFunc {
	return func(ctx context.Context, _ Invocation) (string, error) {
		status, err := api.SchedulerStatus(ctx)
		if err != nil {
			return "", err
		}
		return formatScheduler(status)
	}
}

func triggerUpdateHandler(api Service) HandlerFunc {
	return func(ctx context.Context, _ Invocation) (string, error) {
		result, err := api.TriggerUpdate(ctx)
		if err != nil {
			return "", err
		}
		return formatUpdate(result)
	}
}
