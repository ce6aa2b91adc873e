package compliance

// DefaultCatalog returns the built-in framework catalog with the latest
// assessment counts. Counts are per domain; framework totals are always
// recomputed by the scoring engine.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(defaultFrameworks()...)
	if err != nil {
		// The built-in data is static; a key collision here is a programming
		// error, not a runtime condition.
		panic(err)
	}
	return c
}

func defaultFrameworks() []*Framework {
	return []*Framework{
		{
			Key:           "iso27001",
			Name:          "ISO 27001:2022",
			FullName:      "Information Security Management System",
			Description:   "International standard for information security management systems (ISMS)",
			Icon:          "lock",
			Color:         "#2196F3",
			TotalControls: 93,
			Domains: []Domain{
				{Name: "A.5 Organizational Controls", Controls: 37, Passed: 32, Failed: 3, NA: 2},
				{Name: "A.6 People Controls", Controls: 8, Passed: 7, Failed: 1, NA: 0},
				{Name: "A.7 Physical Controls", Controls: 14, Passed: 12, Failed: 1, NA: 1},
				{Name: "A.8 Technological Controls", Controls: 34, Passed: 28, Failed: 4, NA: 2},
			},
			Findings: []Finding{
				{ID: "iso27001-a.8.8", Control: "A.8.8", Title: "Management of technical vulnerabilities", Status: FindingStatusFail, Severity: SeverityHigh, Detail: "Critical vulnerabilities detected on scanned hosts", RecommendationKey: "rec-critical-patching"},
				{ID: "iso27001-a.8.24", Control: "A.8.24", Title: "Use of cryptography", Status: FindingStatusFail, Severity: SeverityMedium, Detail: "SSL/TLS configuration issues on exposed services", RecommendationKey: "rec-tls-hardening"},
				{ID: "iso27001-a.8.9", Control: "A.8.9", Title: "Configuration management", Status: FindingStatusFail, Severity: SeverityMedium, Detail: "Firewall misconfigurations detected", RecommendationKey: "rec-config-baseline"},
				{ID: "iso27001-a.5.15", Control: "A.5.15", Title: "Access control", Status: FindingStatusPass, Severity: SeverityInfo, Detail: "Access controls properly implemented", RecommendationKey: "rec-access-review"},
				{ID: "iso27001-a.8.15", Control: "A.8.15", Title: "Logging", Status: FindingStatusPass, Severity: SeverityInfo, Detail: "Centralized logging enabled", RecommendationKey: "rec-log-coverage"},
			},
		},
		{
			Key:           "nist",
			Name:          "NIST CSF 2.0",
			FullName:      "Cybersecurity Framework",
			Description:   "Framework for improving critical infrastructure cybersecurity",
			Icon:          "shield",
			Color:         "#4CAF50",
			TotalControls: 108,
			Domains: []Domain{
				{Name: "GOVERN (GV)", Controls: 18, Passed: 15, Failed: 2, NA: 1},
				{Name: "IDENTIFY (ID)", Controls: 20, Passed: 17, Failed: 2, NA: 1},
				{Name: "PROTECT (PR)", Controls: 25, Passed: 20, Failed: 4, NA: 1},
				{Name: "DETECT (DE)", Controls: 18, Passed: 16, Failed: 1, NA: 1},
				{Name: "RESPOND (RS)", Controls: 15, Passed: 13, Failed: 1, NA: 1},
				{Name: "RECOVER (RC)", Controls: 12, Passed: 10, Failed: 1, NA: 1},
			},
			Findings: []Finding{
				{ID: "nist-pr.ds-1", Control: "PR.DS-1", Title: "Data-at-rest protection", Status: FindingStatusFail, Severity: SeverityHigh, Detail: "Unencrypted data stores detected", RecommendationKey: "rec-encryption-at-rest"},
				{ID: "nist-pr.ps-1", Control: "PR.PS-1", Title: "Baseline configurations", Status: FindingStatusFail, Severity: SeverityMedium, Detail: "Systems running outdated software versions", RecommendationKey: "rec-patch-management"},
				{ID: "nist-de.cm-1", Control: "DE.CM-1", Title: "Network monitoring", Status: FindingStatusPass, Severity: SeverityInfo, Detail: "Network monitoring active on all segments", RecommendationKey: "rec-monitoring-coverage"},
				{ID: "nist-id.am-1", Control: "ID.AM-1", Title: "Asset inventory", Status: FindingStatusPass, Severity: SeverityInfo, Detail: "All discovered hosts inventoried", RecommendationKey: "rec-asset-inventory"},
				{ID: "nist-pr.ac-1", Control: "PR.AC-1", Title: "Identity management", Status: FindingStatusFail, Severity: SeverityHigh, Detail: "Systems operating with default credentials", RecommendationKey: "rec-default-credentials"},
			},
		},
		{
			Key:           "pci",
			Name:          "PCI-DSS 4.0",
			FullName:      "Payment Card Industry Data Security Standard",
			Description:   "Security standard for organizations handling credit card data",
			Icon:          "card",
			Color:         "#FF9800",
			TotalControls: 324,
			Domains: []Domain{
				{Name: "Req 1: Network Security Controls", Controls: 36, Passed: 30, Failed: 4, NA: 2},
				{Name: "Req 2: Secure Configurations", Controls: 28, Passed: 22, Failed: 5, NA: 1},
				{Name: "Req 3: Protect Account Data", Controls: 42, Passed: 38, Failed: 3, NA: 1},
				{Name: "Req 4: Protect CHD Transmission", Controls: 18, Passed: 15, Failed: 2, NA: 1},
				{Name: "Req 5: Malware Protection", Controls: 24, Passed: 22, Failed: 1, NA: 1},
				{Name: "Req 6: Secure Development", Controls: 38, Passed: 33, Failed: 4, NA: 1},
				{Name: "Req 7: Restrict Access", Controls: 22, Passed: 19, Failed: 2, NA: 1},
				{Name: "Req 8: Identify Users", Controls: 32, Passed: 27, Failed: 4, NA: 1},
				{Name: "Req 9: Physical Access", Controls: 28, Passed: 26, Failed: 1, NA: 1},
				{Name: "Req 10: Logging & Monitoring", Controls: 26, Passed: 23, Failed: 2, NA: 1},
				{Name: "Req 11: Security Testing", Controls: 18, Passed: 14, Failed: 3, NA: 1},
				{Name: "Req 12: Security Policies", Controls: 12, Passed: 11, Failed: 0, NA: 1},
			},
			Findings: []Finding{
				{ID: "pci-6.3.3", Control: "6.3.3", Title: "Vulnerability scanning", Status: FindingStatusFail, Severity: SeverityHigh, Detail: "High and critical vulnerabilities unresolved", RecommendationKey: "rec-critical-patching"},
				{ID: "pci-2.2.1", Control: "2.2.1", Title: "System configurations", Status: FindingStatusFail, Severity: SeverityMedium, Detail: "Systems retaining vendor-supplied defaults", RecommendationKey: "rec-default-credentials"},
				{ID: "pci-4.2.1", Control: "4.2.1", Title: "Strong cryptography", Status: FindingStatusFail, Severity: SeverityHigh, Detail: "Unencrypted transmission channels in use", RecommendationKey: "rec-encryption-in-transit"},
				{ID: "pci-11.3.1", Control: "11.3.1", Title: "Penetration testing", Status: FindingStatusPass, Severity: SeverityInfo, Detail: "Annual penetration test completed", RecommendationKey: "rec-pentest-schedule"},
				{ID: "pci-10.2.1", Control: "10.2.1", Title: "Audit logs", Status: FindingStatusPass, Severity: SeverityInfo, Detail: "Audit logging enabled on all systems", RecommendationKey: "rec-log-coverage"},
			},
		},
		{
			Key:           "soc2",
			Name:          "SOC 2 Type II",
			FullName:      "Service Organization Control 2",
			Description:   "Trust service criteria for service organizations",
			Icon:          "check",
			Color:         "#9C27B0",
			TotalControls: 64,
			Domains: []Domain{
				{Name: "CC1: Control Environment", Controls: 8, Passed: 7, Failed: 1, NA: 0},
				{Name: "CC2: Communication & Information", Controls: 6, Passed: 5, Failed: 1, NA: 0},
				{Name: "CC3: Risk Assessment", Controls: 6, Passed: 5, Failed: 1, NA: 0},
				{Name: "CC4: Monitoring Activities", Controls: 4, Passed: 4, Failed: 0, NA: 0},
				{Name: "CC5: Control Activities", Controls: 8, Passed: 6, Failed: 2, NA: 0},
				{Name: "CC6: Logical & Physical Access", Controls: 12, Passed: 9, Failed: 2, NA: 1},
				{Name: "CC7: System Operations", Controls: 10, Passed: 8, Failed: 1, NA: 1},
				{Name: "CC8: Change Management", Controls: 6, Passed: 5, Failed: 1, NA: 0},
				{Name: "CC9: Risk Mitigation", Controls: 4, Passed: 3, Failed: 1, NA: 0},
			},
			Findings: []Finding{
				{ID: "soc2-cc6.1", Control: "CC6.1", Title: "Logical access security", Status: FindingStatusFail, Severity: SeverityHigh, Detail: "Accounts with weak passwords identified", RecommendationKey: "rec-password-policy"},
				{ID: "soc2-cc7.2", Control: "CC7.2", Title: "Vulnerability management", Status: FindingStatusFail, Severity: SeverityHigh, Detail: "Missing security patches across the fleet", RecommendationKey: "rec-patch-management"},
				{ID: "soc2-cc6.6", Control: "CC6.6", Title: "System boundaries", Status: FindingStatusPass, Severity: SeverityInfo, Detail: "Network segmentation properly configured", RecommendationKey: "rec-config-baseline"},
				{ID: "soc2-cc7.1", Control: "CC7.1", Title: "Infrastructure monitoring", Status: FindingStatusPass, Severity: SeverityInfo, Detail: "Continuous monitoring active", RecommendationKey: "rec-monitoring-coverage"},
			},
		},
		{
			Key:           "gdpr",
			Name:          "GDPR",
			FullName:      "General Data Protection Regulation",
			Description:   "EU regulation on data protection and privacy",
			Icon:          "globe",
			Color:         "#3F51B5",
			TotalControls: 99,
			Domains: []Domain{
				{Name: "Art. 5: Data Processing Principles", Controls: 12, Passed: 10, Failed: 1, NA: 1},
				{Name: "Art. 6: Lawfulness of Processing", Controls: 8, Passed: 7, Failed: 1, NA: 0},
				{Name: "Art. 12-23: Data Subject Rights", Controls: 18, Passed: 15, Failed: 2, NA: 1},
				{Name: "Art. 24-31: Controller/Processor", Controls: 16, Passed: 13, Failed: 2, NA: 1},
				{Name: "Art. 32-34: Security & Breach", Controls: 15, Passed: 11, Failed: 3, NA: 1},
				{Name: "Art. 35-36: DPIA", Controls: 10, Passed: 8, Failed: 1, NA: 1},
				{Name: "Art. 37-39: DPO", Controls: 8, Passed: 7, Failed: 0, NA: 1},
				{Name: "Art. 44-49: International Transfers", Controls: 12, Passed: 10, Failed: 1, NA: 1},
			},
			Findings: []Finding{
				{ID: "gdpr-art.32", Control: "Art. 32", Title: "Security of processing", Status: FindingStatusFail, Severity: SeverityHigh, Detail: "Encryption gaps detected in systems processing personal data", RecommendationKey: "rec-encryption-in-transit"},
				{ID: "gdpr-art.33", Control: "Art. 33", Title: "Breach notification", Status: FindingStatusPass, Severity: SeverityInfo, Detail: "Breach notification procedures documented", RecommendationKey: "rec-incident-response"},
				{ID: "gdpr-art.25", Control: "Art. 25", Title: "Data protection by design", Status: FindingStatusFail, Severity: SeverityMedium, Detail: "Privacy impact assessment overdue", RecommendationKey: "rec-privacy-assessment"},
				{ID: "gdpr-art.17", Control: "Art. 17", Title: "Right to erasure", Status: FindingStatusPass, Severity: SeverityInfo, Detail: "Data deletion procedures implemented", RecommendationKey: "rec-data-retention"},
			},
		},
		{
			Key:           "hipaa",
			Name:          "HIPAA",
			FullName:      "Health Insurance Portability and Accountability Act",
			Description:   "US regulation for protecting health information",
			Icon:          "health",
			Color:         "#E91E63",
			TotalControls: 75,
			Domains: []Domain{
				{Name: "Administrative Safeguards", Controls: 25, Passed: 21, Failed: 3, NA: 1},
				{Name: "Physical Safeguards", Controls: 15, Passed: 13, Failed: 1, NA: 1},
				{Name: "Technical Safeguards", Controls: 20, Passed: 15, Failed: 4, NA: 1},
				{Name: "Organizational Requirements", Controls: 10, Passed: 9, Failed: 0, NA: 1},
				{Name: "Policies & Documentation", Controls: 5, Passed: 4, Failed: 1, NA: 0},
			},
			Findings: []Finding{
				{ID: "hipaa-164.312a1", Control: "164.312(a)(1)", Title: "Access control", Status: FindingStatusFail, Severity: SeverityHigh, Detail: "Access control deficiencies for ePHI systems", RecommendationKey: "rec-access-review"},
				{ID: "hipaa-164.312e1", Control: "164.312(e)(1)", Title: "Transmission security", Status: FindingStatusFail, Severity: SeverityCritical, Detail: "Unencrypted ePHI transmissions detected", RecommendationKey: "rec-encryption-in-transit"},
				{ID: "hipaa-164.312b", Control: "164.312(b)", Title: "Audit controls", Status: FindingStatusPass, Severity: SeverityInfo, Detail: "Audit logging active for ePHI access", RecommendationKey: "rec-log-coverage"},
				{ID: "hipaa-164.308a1", Control: "164.308(a)(1)", Title: "Security management", Status: FindingStatusPass, Severity: SeverityInfo, Detail: "Risk analysis completed", RecommendationKey: "rec-risk-analysis"},
			},
		},
		{
			Key:           "cis",
			Name:          "CIS Controls v8",
			FullName:      "Center for Internet Security Controls",
			Description:   "Prioritized security actions to protect against cyber attacks",
			Icon:          "key",
			Color:         "#00BCD4",
			TotalControls: 153,
			Domains: []Domain{
				{Name: "CIS 1: Inventory of Assets", Controls: 8, Passed: 7, Failed: 1, NA: 0},
				{Name: "CIS 2: Inventory of Software", Controls: 7, Passed: 5, Failed: 2, NA: 0},
				{Name: "CIS 3: Data Protection", Controls: 12, Passed: 9, Failed: 2, NA: 1},
				{Name: "CIS 4: Secure Configuration", Controls: 12, Passed: 8, Failed: 3, NA: 1},
				{Name: "CIS 5: Account Management", Controls: 10, Passed: 7, Failed: 2, NA: 1},
				{Name: "CIS 6: Access Control", Controls: 8, Passed: 6, Failed: 1, NA: 1},
				{Name: "CIS 7: Vulnerability Management", Controls: 7, Passed: 4, Failed: 3, NA: 0},
				{Name: "CIS 8: Audit Log Management", Controls: 12, Passed: 10, Failed: 1, NA: 1},
				{Name: "CIS 9: Email & Browser", Controls: 7, Passed: 5, Failed: 2, NA: 0},
				{Name: "CIS 10: Malware Defenses", Controls: 7, Passed: 6, Failed: 1, NA: 0},
				{Name: "CIS 11: Data Recovery", Controls: 5, Passed: 4, Failed: 1, NA: 0},
				{Name: "CIS 12: Network Infrastructure", Controls: 8, Passed: 6, Failed: 2, NA: 0},
				{Name: "CIS 13: Network Monitoring", Controls: 11, Passed: 9, Failed: 1, NA: 1},
				{Name: "CIS 14: Security Training", Controls: 9, Passed: 7, Failed: 1, NA: 1},
				{Name: "CIS 15: Service Provider", Controls: 7, Passed: 6, Failed: 0, NA: 1},
				{Name: "CIS 16: Application Security", Controls: 14, Passed: 10, Failed: 3, NA: 1},
				{Name: "CIS 17: Incident Response", Controls: 9, Passed: 8, Failed: 0, NA: 1},
				{Name: "CIS 18: Penetration Testing", Controls: 5, Passed: 4, Failed: 1, NA: 0},
			},
			Findings: []Finding{
				{ID: "cis-7.1", Control: "7.1", Title: "Vulnerability scanning", Status: FindingStatusFail, Severity: SeverityHigh, Detail: "Vulnerabilities detected across the network", RecommendationKey: "rec-vuln-scanning"},
				{ID: "cis-4.1", Control: "4.1", Title: "Secure configuration", Status: FindingStatusFail, Severity: SeverityMedium, Detail: "Configuration deviations from baseline", RecommendationKey: "rec-config-baseline"},
				{ID: "cis-1.1", Control: "1.1", Title: "Asset inventory", Status: FindingStatusPass, Severity: SeverityInfo, Detail: "All assets tracked in inventory", RecommendationKey: "rec-asset-inventory"},
				{ID: "cis-8.2", Control: "8.2", Title: "Centralized logging", Status: FindingStatusPass, Severity: SeverityInfo, Detail: "SIEM collecting logs from all critical systems", RecommendationKey: "rec-log-coverage"},
			},
		},
	}
}
