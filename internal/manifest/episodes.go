package manifest

// Default returns the built-in episode table: every audio file still hosted
// on the WordPress media library, in publication order. The table is static;
// new episodes are added here by hand.
func Default() *Manifest {
	m := &Manifest{Entries: []Entry{
		{
			Title: "Welcome to the Personal Genomics Zone",
			URL:   "https://corpasfoo.files.wordpress.com/2016/05/welcome-personal-genomics-zone.mp3",
			Dest:  "audio/2016-05-14-welcome-personal-genomics-zone.mp3",
		},
		{
			Title: "Inside the Corpasome: Sequencing My Family",
			URL:   "https://corpasfoo.files.wordpress.com/2016/06/corpasome-family-sequencing.mp3",
			Dest:  "audio/2016-06-02-corpasome-family-sequencing.mp3",
		},
		{
			Title: "Direct-to-Consumer Genetic Testing, a Field Guide",
			URL:   "https://corpasfoo.files.wordpress.com/2016/07/dtc-genetic-testing-guide.mp3",
			Dest:  "audio/2016-07-19-dtc-genetic-testing-guide.mp3",
		},
		{
			Title: "Crowdsourcing the Analysis of a Personal Genome",
			URL:   "https://corpasfoo.files.wordpress.com/2016/09/crowdsourcing-personal-genome.mp3",
			Dest:  "audio/2016-09-08-crowdsourcing-personal-genome.mp3",
		},
		{
			Title: "Genome Privacy and the Family",
			URL:   "https://corpasfoo.files.wordpress.com/2016/11/genome-privacy-family.mp3",
			Dest:  "audio/2016-11-21-genome-privacy-family.mp3",
		},
		{
			Title: "A Year of Personal Genomics",
			URL:   "https://corpasfoo.files.wordpress.com/2017/01/year-of-personal-genomics.mp3",
			Dest:  "audio/2017-01-10-year-of-personal-genomics.mp3",
		},
		{
			Title: "Interview: Building Open Genome Visualization Tools",
			URL:   "https://corpasfoo.files.wordpress.com/2017/03/open-genome-visualization.wav",
			Dest:  "audio/2017-03-05-open-genome-visualization.wav",
		},
		{
			Title: "Clinical Genomics in the Developing World",
			URL:   "https://corpasfoo.files.wordpress.com/2017/06/clinical-genomics-developing-world.mp3",
			Dest:  "audio/2017-06-28-clinical-genomics-developing-world.mp3",
		},
		{
			Title: "Ancestry Testing and Identity",
			URL:   "https://corpasfoo.files.wordpress.com/2017/10/ancestry-testing-identity.mp3",
			Dest:  "audio/2017-10-12-ancestry-testing-identity.mp3",
		},
		{
			Title: "Ten Years After the Personal Genome Project",
			URL:   "https://corpasfoo.files.wordpress.com/2018/04/ten-years-personal-genome-project.wav",
			Dest:  "audio/2018-04-03-ten-years-personal-genome-project.wav",
		},
		{
			Title: "Genomic Medicine Meets Machine Learning",
			URL:   "https://corpasfoo.files.wordpress.com/2019/02/genomic-medicine-machine-learning.mp3",
			Dest:  "audio/2019-02-17-genomic-medicine-machine-learning.mp3",
		},
		{
			Title: "LLMs and Academic Writing",
			URL:   "https://corpasfoo.files.wordpress.com/2026/01/llms-academic-writing.mp3",
			Dest:  "audio/2026-01-25-llms-academic-writing.mp3",
		},
	}}
	m.number()
	return m
}
