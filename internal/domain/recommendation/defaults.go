package recommendation

// DefaultLibrary returns the built-in remediation guidance library. Keys are
// shared across findings in multiple frameworks.
func DefaultLibrary() *Library {
	l, err := NewLibrary(defaultRecommendations()...)
	if err != nil {
		// Static data; duplicate keys here are a programming error.
		panic(err)
	}
	return l
}

func defaultRecommendations() []*Recommendation {
	return []*Recommendation{
		{
			Key:         "rec-critical-patching",
			Title:       "Patch critical vulnerabilities",
			Description: "Implement immediate patching for critical and high severity vulnerabilities.",
			Steps: []string{
				"Export the current vulnerability report and rank by CVSS score",
				"Schedule emergency maintenance windows for critical hosts",
				"Apply vendor patches, starting with internet-facing systems",
				"Re-scan patched hosts to confirm remediation",
			},
			AutoFix:       &AutoFix{Type: "patch", Params: map[string]string{"window": "immediate", "reboot": "required"}},
			Priority:      PriorityCritical,
			Effort:        EffortMedium,
			EstimatedTime: "2-3 days",
			RiskIfIgnored: "Known exploits are available for unpatched critical vulnerabilities.",
		},
		{
			Key:         "rec-tls-hardening",
			Title:       "Harden SSL/TLS configuration",
			Description: "Update SSL certificates and enforce TLS 1.2 or later on all exposed services.",
			Steps: []string{
				"Inventory services presenting expired or self-signed certificates",
				"Replace weak certificates and disable TLS 1.0/1.1 and weak cipher suites",
				"Verify configuration with an external TLS scanner",
			},
			AutoFix:       &AutoFix{Type: "config", Params: map[string]string{"min_tls": "1.2"}},
			Priority:      PriorityHigh,
			Effort:        EffortLow,
			EstimatedTime: "1 day",
			RiskIfIgnored: "Traffic to affected services can be intercepted or downgraded.",
		},
		{
			Key:         "rec-config-baseline",
			Title:       "Enforce configuration baseline",
			Description: "Review and correct configuration deviations against the approved baseline, including firewall rules.",
			Steps: []string{
				"Compare running configurations against the documented baseline",
				"Remove permissive or shadowed firewall rules",
				"Record approved exceptions and automate drift checks",
			},
			AutoFix:       &AutoFix{Type: "config"},
			Priority:      PriorityMedium,
			Effort:        EffortMedium,
			EstimatedTime: "1 week",
			RiskIfIgnored: "Unmanaged configuration drift reopens closed attack paths.",
		},
		{
			Key:         "rec-access-review",
			Title:       "Review access controls",
			Description: "Implement role-based access control and run periodic access reviews.",
			Steps: []string{
				"Map accounts to roles and remove direct entitlements",
				"Revoke access for leavers and dormant accounts",
				"Schedule quarterly access recertification",
			},
			Priority:      PriorityHigh,
			Effort:        EffortMedium,
			EstimatedTime: "2 weeks",
			RiskIfIgnored: "Excessive entitlements allow lateral movement after account compromise.",
		},
		{
			Key:         "rec-log-coverage",
			Title:       "Maintain log collection coverage",
			Description: "Keep centralized logging healthy and expand log source coverage.",
			Steps: []string{
				"Audit log sources against the asset inventory",
				"Onboard missing critical systems into the SIEM",
				"Confirm retention meets the longest applicable mandate",
			},
			Priority:      PriorityMedium,
			Effort:        EffortLow,
			EstimatedTime: "3 days",
			RiskIfIgnored: "Gaps in log coverage blind incident investigations.",
		},
		{
			Key:         "rec-encryption-at-rest",
			Title:       "Encrypt data at rest",
			Description: "Implement AES-256 encryption for all data stores holding sensitive data.",
			Steps: []string{
				"Classify data stores by sensitivity",
				"Enable storage-level or database-level encryption",
				"Rotate and escrow encryption keys in the KMS",
			},
			AutoFix:       &AutoFix{Type: "config", Params: map[string]string{"algorithm": "aes-256"}},
			Priority:      PriorityHigh,
			Effort:        EffortMedium,
			EstimatedTime: "1 week",
			RiskIfIgnored: "Stolen media or snapshots expose plaintext sensitive data.",
		},
		{
			Key:         "rec-encryption-in-transit",
			Title:       "Encrypt data in transit",
			Description: "Enforce TLS 1.2+ for all transmissions carrying sensitive or regulated data.",
			Steps: []string{
				"Identify cleartext protocols still in use (FTP, telnet, plain HTTP)",
				"Migrate transfers to TLS-protected equivalents",
				"Block cleartext ports at network boundaries",
			},
			AutoFix:       &AutoFix{Type: "config", Params: map[string]string{"min_tls": "1.2"}},
			Priority:      PriorityCritical,
			Effort:        EffortMedium,
			EstimatedTime: "1 week",
			RiskIfIgnored: "Regulated data crossing the network in cleartext is interceptable.",
		},
		{
			Key:         "rec-patch-management",
			Title:       "Establish automated patch management",
			Description: "Update all systems to supported versions and automate the ongoing patch cycle.",
			Steps: []string{
				"Deploy a patch management agent to all managed hosts",
				"Define patch rings with canary and broad rollout phases",
				"Report monthly on patch latency per severity",
			},
			Priority:      PriorityHigh,
			Effort:        EffortHigh,
			EstimatedTime: "1 month",
			RiskIfIgnored: "Patch latency grows until routine exploits succeed.",
		},
		{
			Key:         "rec-default-credentials",
			Title:       "Remove default credentials",
			Description: "Change all vendor-supplied default accounts and credentials immediately.",
			Steps: []string{
				"Scan for known default credential pairs across the estate",
				"Disable or rename vendor accounts where possible",
				"Set unique strong credentials and store them in the vault",
			},
			AutoFix:       &AutoFix{Type: "script", Params: map[string]string{"vault": "required"}},
			Priority:      PriorityCritical,
			Effort:        EffortLow,
			EstimatedTime: "2 days",
			RiskIfIgnored: "Default credentials are the first thing every attacker tries.",
		},
		{
			Key:         "rec-password-policy",
			Title:       "Enforce password complexity policy",
			Description: "Enforce length and complexity requirements and retire weak passwords.",
			Steps: []string{
				"Enable the directory's password policy with minimum length 14",
				"Force rotation for accounts flagged with weak passwords",
				"Enable breached-password screening at change time",
			},
			AutoFix:       &AutoFix{Type: "policy", Params: map[string]string{"min_length": "14"}},
			Priority:      PriorityHigh,
			Effort:        EffortLow,
			EstimatedTime: "3 days",
			RiskIfIgnored: "Weak passwords fall quickly to spraying and stuffing attacks.",
		},
		{
			Key:         "rec-monitoring-coverage",
			Title:       "Maintain monitoring coverage",
			Description: "Keep continuous monitoring active and review coverage as the estate changes.",
			Steps: []string{
				"Reconcile monitored segments against the network inventory",
				"Alert on monitoring agent heartbeat loss",
			},
			Priority:      PriorityMedium,
			Effort:        EffortLow,
			EstimatedTime: "2 days",
			RiskIfIgnored: "Unmonitored segments hide attacker activity.",
		},
		{
			Key:         "rec-asset-inventory",
			Title:       "Maintain asset inventory",
			Description: "Keep the asset inventory accurate with automated discovery.",
			Steps: []string{
				"Run scheduled discovery scans across all network ranges",
				"Reconcile discovered hosts against the CMDB weekly",
			},
			Priority:      PriorityMedium,
			Effort:        EffortLow,
			EstimatedTime: "ongoing",
			RiskIfIgnored: "Unknown assets receive no patching, monitoring, or backup.",
		},
		{
			Key:         "rec-pentest-schedule",
			Title:       "Maintain penetration testing cadence",
			Description: "Keep the annual external test and quarterly internal scans on schedule.",
			Steps: []string{
				"Book the next quarterly internal scan window",
				"Track remediation of prior test findings to closure",
			},
			Priority:      PriorityMedium,
			Effort:        EffortLow,
			EstimatedTime: "1 day",
			RiskIfIgnored: "Control regressions go unnoticed between assessments.",
		},
		{
			Key:         "rec-incident-response",
			Title:       "Exercise breach response procedures",
			Description: "Keep breach notification procedures current and rehearsed.",
			Steps: []string{
				"Run an annual breach response tabletop drill",
				"Verify the 72-hour notification path with legal and comms",
			},
			Priority:      PriorityMedium,
			Effort:        EffortLow,
			EstimatedTime: "1 week",
			RiskIfIgnored: "An unrehearsed response misses regulatory notification deadlines.",
		},
		{
			Key:         "rec-privacy-assessment",
			Title:       "Complete privacy impact assessments",
			Description: "Complete the overdue privacy impact assessment for new systems.",
			Steps: []string{
				"Inventory processing activities added since the last PIA",
				"Assess necessity, proportionality, and residual risk",
				"Record mitigations and DPO sign-off",
			},
			Priority:      PriorityMedium,
			Effort:        EffortMedium,
			EstimatedTime: "2 weeks",
			RiskIfIgnored: "Unassessed processing risks regulatory findings and fines.",
		},
		{
			Key:         "rec-data-retention",
			Title:       "Automate data retention enforcement",
			Description: "Automate deletion so retention limits are enforced without manual effort.",
			Steps: []string{
				"Map retention periods per data category",
				"Schedule automated purges with audit logging",
			},
			Priority:      PriorityMedium,
			Effort:        EffortMedium,
			EstimatedTime: "2 weeks",
			RiskIfIgnored: "Over-retained personal data widens breach impact and liability.",
		},
		{
			Key:         "rec-risk-analysis",
			Title:       "Keep risk analysis current",
			Description: "Update the organizational risk analysis annually.",
			Steps: []string{
				"Refresh threat and asset inventories",
				"Re-score risks and update the treatment plan",
			},
			Priority:      PriorityMedium,
			Effort:        EffortMedium,
			EstimatedTime: "3 weeks",
			RiskIfIgnored: "Stale risk analysis misdirects security investment.",
		},
		{
			Key:         "rec-vuln-scanning",
			Title:       "Establish weekly vulnerability scanning",
			Description: "Move from ad hoc to weekly authenticated vulnerability scanning.",
			Steps: []string{
				"Configure authenticated scans for all asset groups",
				"Set a weekly schedule with differential reporting",
				"Feed results into the patching workflow automatically",
			},
			Priority:      PriorityHigh,
			Effort:        EffortMedium,
			EstimatedTime: "1 week",
			RiskIfIgnored: "New vulnerabilities stay invisible between infrequent scans.",
		},
	}
}
